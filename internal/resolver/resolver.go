// Package resolver turns the layered totoro configuration into the effective run configuration:
// it merges the configuration sources, finds a default runner, infers the directory the test
// server must expose and rewrites local runner and adapter files into URLs below it.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/discover"
	errs "github.com/totorojs/totoro/internal/errors"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/paths"
)

const (
	runnerExt  = ".html"
	adapterExt = ".js"
)

// Resolver computes the effective run configuration.
// It holds no state between calls to Resolve.
type Resolver struct {
	logger            hclog.Logger
	fs                files.FileSystem
	loader            config.Loader
	discoverer        discover.Discoverer
	workDir           string
	defaults          config.Defaults
	globalConfigFile  string
	projectConfigFile string
	runnerRoot        paths.RootStrategy
	adapterRoot       paths.RootStrategy
}

// NewResolver creates a Resolver logging its diagnostics to logger.
func NewResolver(logger hclog.Logger, opt ...Option) (*Resolver, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	workDir = filepath.Clean(workDir)

	loader := opts.Loader
	if loader == nil {
		loader = &config.JSONFileLoader{FS: opts.FS}
	}

	discoverer := opts.Discoverer
	if discoverer == nil {
		discoverer = discover.NewDefaultDiscoverer(opts.FS)
	}

	projectConfigFile := opts.ProjectConfigFile
	if projectConfigFile == "" {
		projectConfigFile = files.ProjectConfigFileName
	}

	return &Resolver{
		logger:            logger.Named("resolver"),
		fs:                opts.FS,
		loader:            loader,
		discoverer:        discoverer,
		workDir:           workDir,
		defaults:          opts.Defaults,
		globalConfigFile:  paths.Abs(workDir, opts.GlobalConfigFile),
		projectConfigFile: paths.Abs(workDir, projectConfigFile),
		runnerRoot:        opts.RunnerRoot,
		adapterRoot:       opts.AdapterRoot,
	}, nil
}

// Resolve merges overrides, the project file, the global file and the defaults (in that precedence)
// and, unless list mode is requested, resolves the runner, the adapter and the client root.
//
// Problems with individual values are logged and leave the offending value as it was,
// callers must check whether the result is usable.
// An error is only returned when the merged values cannot form a configuration at all.
func (r *Resolver) Resolve(overrides map[string]any) (*config.Config, error) {
	merged, err := config.Merge(
		overrides,
		r.loadLayer(r.projectConfigFile),
		r.loadLayer(r.globalConfigFile),
		r.defaults.Layer(),
	)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Decode(merged)
	if err != nil {
		return nil, err
	}

	if cfg.List {
		r.logger.Debug("List mode, skipping runner, adapter and client root resolution")
		return cfg, nil
	}

	if cfg.Runner == "" {
		r.logger.Debug("Runner not specified, trying to find one", "workDir", r.workDir)
		cfg.Runner = r.discoverRunner()
	}

	r.resolveClientRoot(cfg)
	r.resolveRunner(cfg)
	r.resolveAdapter(cfg)

	return cfg, nil
}

// loadLayer reads a configuration file, returning nil when it is missing or unusable.
func (r *Resolver) loadLayer(path string) map[string]any {
	if path == "" {
		return nil
	}

	layer, err := r.loader.Load(path)
	switch {
	case err == nil:
		r.logger.Debug("Loaded config file", "path", path, "keys", len(layer))
		return layer
	case errors.Is(err, config.ErrConfigFileNotFound):
		r.logger.Trace("Config file not found, skipping", "path", path)
	default:
		r.logger.Warn("Ignoring config file", "path", path, "error", err)
	}

	return nil
}

func (r *Resolver) discoverRunner() string {
	runner, err := r.discoverer.DiscoverRunner(r.workDir)
	if err != nil {
		r.logger.Warn("No runner found", "error", err)
		return ""
	}

	r.logger.Debug("Found runner", "runner", runner)
	return runner
}

// resolveClientRoot sets the client root to a directory containing every local runner or adapter file,
// or removes it when neither is a local file.
func (r *Resolver) resolveClientRoot(cfg *config.Config) {
	runner := r.localFile(cfg.Runner)
	adapter := ""
	if !paths.IsKeyword(cfg.Adapter) {
		adapter = r.localFile(cfg.Adapter)
	}

	if runner == "" && adapter == "" {
		r.logger.Debug("Neither runner nor adapter is an existing file, client root not needed")
		cfg.ClientRoot = ""
		return
	}

	var runnerRoot, adapterRoot string
	if runner != "" {
		runnerRoot = r.runnerRoot(runner)
		r.logger.Debug("Guessed runner root", "root", runnerRoot)
	}
	if adapter != "" {
		adapterRoot = r.adapterRoot(adapter)
		r.logger.Debug("Guessed adapter root", "root", adapterRoot)
	}

	var specified string
	if cfg.ClientRoot != "" {
		specified = paths.Abs(r.workDir, cfg.ClientRoot)
		r.logger.Debug("Specified client root", "clientRoot", specified)
	}

	root, err := paths.CommonRoot(runnerRoot, adapterRoot)
	if err != nil {
		if specified != "" && paths.Contains(specified, runnerRoot) && paths.Contains(specified, adapterRoot) {
			r.logger.Debug("Using specified client root for runner and adapter", "clientRoot", specified)
			cfg.ClientRoot = specified
			return
		}

		r.logger.Error(
			"Cannot decide a client root for runner and adapter",
			"runnerRoot", runnerRoot,
			"adapterRoot", adapterRoot,
			"error", err,
		)
		cfg.ClientRoot = ""
		return
	}

	switch {
	case specified == "":
		r.logger.Debug("Client root not specified, using guessed one", "clientRoot", root)
		cfg.ClientRoot = root
	case !paths.Contains(specified, root):
		r.logger.Warn("Specified client root is not appropriate, using guessed one", "specified", specified, "clientRoot", root)
		cfg.ClientRoot = root
	default:
		cfg.ClientRoot = specified
	}
}

// resolveRunner rewrites a local runner file into its URL below the client root.
func (r *Resolver) resolveRunner(cfg *config.Config) {
	if cfg.Runner == "" || paths.IsURL(cfg.Runner) {
		return
	}

	if u, ok := r.serveFile(cfg, cfg.Runner, runnerExt, errs.ErrRunnerUnavailable, errs.ErrRunnerNotHTML); ok {
		cfg.Runner = u
	}
}

// resolveAdapter rewrites a local adapter file into its URL below the client root.
// Keywords name built-in adapters and are kept as they are.
func (r *Resolver) resolveAdapter(cfg *config.Config) {
	if cfg.Adapter == "" || paths.IsURL(cfg.Adapter) || paths.IsKeyword(cfg.Adapter) {
		return
	}

	if u, ok := r.serveFile(cfg, cfg.Adapter, adapterExt, errs.ErrAdapterUnavailable, errs.ErrAdapterNotJS); ok {
		cfg.Adapter = u
	}
}

// serveFile returns the URL value is served at, provided it is an existing file with the wanted extension.
func (r *Resolver) serveFile(cfg *config.Config, value string, ext string, errUnavailable error, errExt error) (string, bool) {
	file := r.localFile(value)
	if file == "" {
		r.logger.Error("Specified file is not available", "path", value, "error", errUnavailable)
		return "", false
	}

	if !paths.HasExt(file, ext) {
		r.logger.Error("Specified file has the wrong type", "path", value, "want", ext, "error", errExt)
		return "", false
	}

	u, err := paths.ServeURL(cfg.ClientRoot, file, cfg.ServerHost, cfg.ServerPort)
	if err != nil {
		r.logger.Error("Cannot build URL for file", "path", value, "clientRoot", cfg.ClientRoot, "error", err)
		return "", false
	}

	r.logger.Debug("Serving file", "path", file, "url", u)
	return u, true
}

// localFile returns the absolute path of value when it names an existing local file.
func (r *Resolver) localFile(value string) string {
	if value == "" || paths.IsURL(value) {
		return ""
	}

	file := paths.Abs(r.workDir, value)
	if !paths.IsExistingFile(r.fs, file) {
		return ""
	}

	return file
}
