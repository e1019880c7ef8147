package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/totorojs/totoro/internal/files"
)

var _ Loader = (*JSONFileLoader)(nil)

// Loader reads a single configuration layer from a file.
type Loader interface {
	Load(path string) (map[string]any, error)
}

// JSONFileLoader loads configuration layers stored as flat JSON objects.
// No schema is applied: every key in the object is returned.
type JSONFileLoader struct {
	FS files.FileSystem
}

// Load returns the key/values stored in the JSON object at path.
// A missing file returns ErrConfigFileNotFound, unparsable content or anything other than an object
// returns ErrConfigFileInvalid. An empty file is an empty layer.
func (l *JSONFileLoader) Load(path string) (map[string]any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigFileNotFound)
	}

	fs := l.FS
	if fs == nil {
		fs = files.OS{}
	}

	if !fs.IsFile(path) {
		return nil, fmt.Errorf("%w: '%s'", ErrConfigFileNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrConfigFileInvalid, path, err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: '%s' does not hold a JSON object", ErrConfigFileInvalid, path)
	}

	return values, nil
}
