package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/totorojs/totoro/internal/files"
)

// Init creates a skeleton project configuration file listing the default browsers.
func Init(path string, defaults Defaults) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := json.MarshalIndent(map[string]any{
		KeyBrowsers: defaults.Browsers(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(content, '\n'), files.RegularFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
