package flags

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/totorojs/totoro/internal/files"
)

const (
	// Env vars
	EnvVarConfigFile = "TOTORO_CONFIG_FILE"
	EnvVarLogPath    = "TOTORO_LOG_PATH"
	EnvVarLogLevel   = "TOTORO_LOG_LEVEL"

	// Defaults
	DefaultConfigFile = files.ProjectConfigFileName
	DefaultLogPath    = ""
	DefaultLogLevel   = "info"

	// Flag names
	FlagNameConfigFile = "config-file"
	FlagNameLogPath    = "log-path"
	FlagNameLogLevel   = "log-level"
)

var (
	ConfigFile string
	LogPath    string
	LogLevel   string
)

// InitFlags registers the flags controlling where totoro reads its project configuration and writes its logs.
// Each flag defaults to its environment variable, then to the built-in default.
func InitFlags(fs *pflag.FlagSet) {
	initConfigFile(fs)
	initLogger(fs)
}

func initConfigFile(fs *pflag.FlagSet) {
	ConfigFile = fromEnv(ConfigFile, EnvVarConfigFile, DefaultConfigFile)
	fs.StringVar(
		&ConfigFile,
		FlagNameConfigFile,
		ConfigFile,
		fmt.Sprintf(
			"project config file, relative to the working directory; takes precedence over ~/%s/%s (env: %s)",
			files.AppDirName(),
			files.GlobalConfigFileName,
			EnvVarConfigFile,
		),
	)
}

func initLogger(fs *pflag.FlagSet) {
	LogPath = fromEnv(LogPath, EnvVarLogPath, DefaultLogPath)
	fs.StringVar(
		&LogPath,
		FlagNameLogPath,
		LogPath,
		fmt.Sprintf("file resolution diagnostics are appended to, stderr when empty (env: %s)", EnvVarLogPath),
	)

	LogLevel = strings.ToLower(fromEnv(LogLevel, EnvVarLogLevel, DefaultLogLevel))
	fs.StringVar(
		&LogLevel,
		FlagNameLogLevel,
		LogLevel,
		fmt.Sprintf("minimum level of resolution diagnostics: trace, debug, info, warn, error or off (env: %s)", EnvVarLogLevel),
	)
}

// fromEnv keeps a value already set, otherwise reads the trimmed environment variable, otherwise returns def.
func fromEnv(current string, envVar string, def string) string {
	if current != "" {
		return current
	}
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}

	return def
}
