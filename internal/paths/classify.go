// Package paths classifies the values users pass for the runner and adapter,
// infers the directory the test server should expose, and converts local
// files below that directory into URLs.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/totorojs/totoro/internal/files"
)

// IsURL reports whether s is an absolute http or https URL.
// Only the scheme prefix is checked, case-sensitively.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsKeyword reports whether s is a bare identifier naming a built-in adapter,
// i.e. it contains neither a path separator nor a dot.
func IsKeyword(s string) bool {
	if s == "" {
		return false
	}

	return !strings.ContainsAny(s, "./"+string(filepath.Separator))
}

// IsExistingFile reports whether p names an existing regular file.
func IsExistingFile(fs files.FileSystem, p string) bool {
	if p == "" || fs == nil {
		return false
	}

	return fs.Exists(p) && fs.IsFile(p)
}

// HasExt reports whether the extension of p is exactly ext (including the leading dot).
func HasExt(p string, ext string) bool {
	return filepath.Ext(p) == ext
}

// Abs returns p as an absolute, cleaned path, resolving relative paths against workDir.
func Abs(workDir string, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(workDir, p)
}
