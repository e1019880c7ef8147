package resolver

import (
	"fmt"
	"strings"

	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/discover"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/paths"
)

// Options contains optional configuration for the Resolver.
// NewOptions should be used to create instances of Options.
type Options struct {
	// FS is the filesystem runner, adapter and config files are looked up in.
	FS files.FileSystem

	// Loader reads the global and project configuration files.
	// Defaults to a JSON loader over FS.
	Loader config.Loader

	// Discoverer finds a runner when none is configured.
	// Defaults to looking for runner.html in the test directory, using FS.
	Discoverer discover.Discoverer

	// WorkingDir is the directory relative paths are resolved against.
	// Defaults to the process working directory.
	WorkingDir string

	// Defaults is the lowest-precedence configuration layer.
	Defaults config.Defaults

	// GlobalConfigFile is the user-specific configuration file, empty to skip it.
	// Defaults to ~/.totoro/config.json.
	GlobalConfigFile string

	// ProjectConfigFile is the project configuration file.
	// Defaults to totoro-config.json in WorkingDir; relative paths are resolved against WorkingDir.
	ProjectConfigFile string

	// RunnerRoot maps an existing runner file to the directory that should be served for it.
	RunnerRoot paths.RootStrategy

	// AdapterRoot maps an existing adapter file to the directory that should be served for it.
	AdapterRoot paths.RootStrategy
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewOptions(opts ...Option) (Options, error) {
	options := defaultOptions()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// WithFileSystem configures the filesystem the resolver inspects.
func WithFileSystem(fs files.FileSystem) Option {
	return func(o *Options) error {
		if fs == nil {
			return fmt.Errorf("file system cannot be nil")
		}
		o.FS = fs
		return nil
	}
}

// WithLoader configures how configuration files are read.
func WithLoader(l config.Loader) Option {
	return func(o *Options) error {
		if l == nil {
			return fmt.Errorf("config loader cannot be nil")
		}
		o.Loader = l
		return nil
	}
}

// WithDiscoverer configures how a default runner is found.
func WithDiscoverer(d discover.Discoverer) Option {
	return func(o *Options) error {
		if d == nil {
			return fmt.Errorf("discoverer cannot be nil")
		}
		o.Discoverer = d
		return nil
	}
}

// WithWorkingDir configures the directory relative paths are resolved against.
func WithWorkingDir(dir string) Option {
	return func(o *Options) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("working directory cannot be empty")
		}
		o.WorkingDir = dir
		return nil
	}
}

// WithDefaults configures the built-in defaults layer.
func WithDefaults(d config.Defaults) Option {
	return func(o *Options) error {
		o.Defaults = d
		return nil
	}
}

// WithGlobalConfigFile configures the user-specific configuration file.
// An empty path disables the global layer.
func WithGlobalConfigFile(path string) Option {
	return func(o *Options) error {
		o.GlobalConfigFile = strings.TrimSpace(path)
		return nil
	}
}

// WithProjectConfigFile configures the project configuration file.
func WithProjectConfigFile(path string) Option {
	return func(o *Options) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("project config file cannot be empty")
		}
		o.ProjectConfigFile = path
		return nil
	}
}

// WithRunnerRootStrategy configures how the served directory is guessed from the runner's location.
func WithRunnerRootStrategy(s paths.RootStrategy) Option {
	return func(o *Options) error {
		if s == nil {
			return fmt.Errorf("runner root strategy cannot be nil")
		}
		o.RunnerRoot = s
		return nil
	}
}

// WithAdapterRootStrategy configures how the served directory is guessed from the adapter's location.
func WithAdapterRootStrategy(s paths.RootStrategy) Option {
	return func(o *Options) error {
		if s == nil {
			return fmt.Errorf("adapter root strategy cannot be nil")
		}
		o.AdapterRoot = s
		return nil
	}
}

// DefaultRunnerRoot assumes the runner lives two levels below the served root, e.g. <root>/test/runner.html.
func DefaultRunnerRoot() paths.RootStrategy {
	return paths.AncestorDir(2)
}

// DefaultAdapterRoot serves the directory containing the adapter.
func DefaultAdapterRoot() paths.RootStrategy {
	return paths.AncestorDir(1)
}

// defaultOptions returns Options with default values.
// Values depending on other options (loader, discoverer, paths) are filled in by NewResolver.
func defaultOptions() Options {
	// Without a resolvable home directory there is simply no global layer.
	globalConfigFile, _ := files.GlobalConfigFile()

	return Options{
		FS:               files.OS{},
		Defaults:         config.NewDefaults(config.DefaultClientHost),
		GlobalConfigFile: globalConfigFile,
		RunnerRoot:       DefaultRunnerRoot(),
		AdapterRoot:      DefaultAdapterRoot(),
	}
}
