package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvVarHome overrides the directory holding the user-specific totoro configuration.
	EnvVarHome = "TOTORO_HOME"

	// GlobalConfigFileName is the name of the user-specific configuration file.
	GlobalConfigFileName = "config.json"

	// ProjectConfigFileName is the name of the project-level configuration file,
	// looked up in the working directory.
	ProjectConfigFileName = "totoro-config.json"

	// RegularFile permissions for files written by totoro.
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for directories created by totoro.
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)

var _ FileSystem = OS{}

// FileSystem is the narrow filesystem capability used while resolving configuration.
// Implementations never return errors from the predicates: any failure means "no".
type FileSystem interface {
	// Exists reports whether anything (file or directory) lives at path.
	Exists(path string) bool

	// IsFile reports whether path names a regular file.
	IsFile(path string) bool

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

// OS is a FileSystem backed by the host operating system.
type OS struct{}

func (OS) Exists(path string) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(path)
	return err == nil
}

func (OS) IsFile(path string) bool {
	if path == "" {
		return false
	}

	// Use os.Stat to follow symlinks and get target info.
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AppDirName returns the name of the directory, under the user's home, holding totoro's global configuration.
func AppDirName() string {
	return ".totoro"
}

// UserSpecificConfigDir returns the directory holding the user-specific configuration.
// It respects the TOTORO_HOME environment variable, which must be an absolute path when set.
// When TOTORO_HOME is not set, it defaults to ~/.totoro
func UserSpecificConfigDir() (string, error) {
	if dir, ok := os.LookupEnv(EnvVarHome); ok && strings.TrimSpace(dir) != "" {
		dir = strings.TrimSpace(dir)
		if filepath.IsAbs(dir) {
			return filepath.Clean(dir), nil
		}

		return "", fmt.Errorf("environment variable '%s' must be an absolute path, got: %s", EnvVarHome, dir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, AppDirName()), nil
}

// GlobalConfigFile returns the path of the user-specific configuration file.
func GlobalConfigFile() (string, error) {
	dir, err := UserSpecificConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, GlobalConfigFileName), nil
}
