package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/flags"
	"github.com/totorojs/totoro/internal/network"
	"github.com/totorojs/totoro/internal/resolver"
)

type BaseCmd struct {
	logger    hclog.Logger
	overrides *flags.Overrides
}

// SetOverrides sets the run configuration flags the command resolves with.
func (c *BaseCmd) SetOverrides(o *flags.Overrides) {
	c.overrides = o
}

// Overrides returns the run configuration options set on the command line.
func (c *BaseCmd) Overrides() map[string]any {
	return c.overrides.Values()
}

// SetLogger updates the command's logger
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command.
// When none was set, one is built from the log flags, which must have been parsed by then.
func (c *BaseCmd) Logger() (hclog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	logLevel := flags.LogLevel
	if logLevel == "" {
		logLevel = strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
	}

	logPath := flags.LogPath
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	logger, err := NewLogger(logLevel, logPath, os.Stderr)
	if err != nil {
		return nil, err
	}
	c.logger = logger

	return c.logger, nil
}

// NewLogger creates the totoro logger at the given level.
// Logs are appended to the file at logPath, or written to fallback when logPath is empty.
func NewLogger(logLevel string, logPath string, fallback io.Writer) (hclog.Logger, error) {
	output := fallback
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, files.RegularFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		output = f
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "totoro",
		Level:  hclog.LevelFromString(LogLevel(logLevel)),
		Output: output,
	}), nil
}

// LogLevel normalizes level to one understood by hclog, defaulting to info.
func LogLevel(level string) string {
	lvl := strings.ToLower(strings.TrimSpace(level))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return flags.DefaultLogLevel
	}
}

// ResolveConfig resolves the run configuration.
// Explicit overrides take precedence over TOTORO_* environment variables, which take precedence over config files.
func (c *BaseCmd) ResolveConfig(overrides map[string]any, opt ...resolver.Option) (*config.Config, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	envLayer, err := config.EnvLayer()
	if err != nil {
		return nil, err
	}

	explicit, err := config.Merge(overrides, envLayer)
	if err != nil {
		return nil, err
	}

	opts := []resolver.Option{
		resolver.WithDefaults(config.NewDefaults(network.ExternalIPv4(config.DefaultClientHost))),
	}
	if flags.ConfigFile != "" {
		opts = append(opts, resolver.WithProjectConfigFile(flags.ConfigFile))
	}
	opts = append(opts, opt...)

	r, err := resolver.NewResolver(logger, opts...)
	if err != nil {
		return nil, err
	}

	return r.Resolve(explicit)
}
