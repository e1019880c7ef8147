package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// Configuration keys, as they appear in config files and in Config.Map.
const (
	KeyBrowsers   = "browsers"
	KeyRunner     = "runner"
	KeyAdapter    = "adapter"
	KeyClientRoot = "clientRoot"
	KeyCharset    = "charset"
	KeyTimeout    = "timeout"
	KeyClientHost = "clientHost"
	KeyClientPort = "clientPort"
	KeyServerHost = "serverHost"
	KeyServerPort = "serverPort"
	KeyList       = "list"
)

// Config is the effective run configuration for a single totoro invocation.
// Empty strings mean the option is absent.
type Config struct {
	// Browsers lists the browser identifiers to run the tests in, in order.
	Browsers []string `mapstructure:"browsers"`

	// Runner is a URL or a local path to the HTML page bootstrapping the tests.
	Runner string `mapstructure:"runner"`

	// Adapter is a URL, a built-in adapter keyword or a local path to the adapter script.
	Adapter string `mapstructure:"adapter"`

	// ClientRoot is the absolute directory the test server exposes as its document root.
	ClientRoot string `mapstructure:"clientRoot"`

	Charset    string `mapstructure:"charset"`
	Timeout    int    `mapstructure:"timeout"`
	ClientHost string `mapstructure:"clientHost"`
	ClientPort string `mapstructure:"clientPort"`
	ServerHost string `mapstructure:"serverHost"`
	ServerPort string `mapstructure:"serverPort"`

	// List requests enumeration only; no runner, adapter or root resolution takes place.
	List bool `mapstructure:"list"`

	// Extra holds keys totoro does not know about, passed through untouched.
	Extra map[string]any `mapstructure:",remain"`
}

// Decode builds a Config from merged configuration values.
// Values are weakly typed so that, for example, a numeric port in a JSON file decodes into a string.
func Decode(values map[string]any) (*Config, error) {
	cfg := &Config{}
	if err := decode(values, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return cfg, nil
}

func decode(values map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}

// Map renders the configuration as a flat key/value map, omitting absent options.
func (c *Config) Map() map[string]any {
	m := make(map[string]any, len(c.Extra)+11)
	maps.Copy(m, c.Extra)

	if len(c.Browsers) > 0 {
		m[KeyBrowsers] = slices.Clone(c.Browsers)
	}
	if c.Timeout != 0 {
		m[KeyTimeout] = c.Timeout
	}
	if c.List {
		m[KeyList] = true
	}

	for k, v := range map[string]string{
		KeyRunner:     c.Runner,
		KeyAdapter:    c.Adapter,
		KeyClientRoot: c.ClientRoot,
		KeyCharset:    c.Charset,
		KeyClientHost: c.ClientHost,
		KeyClientPort: c.ClientPort,
		KeyServerHost: c.ServerHost,
		KeyServerPort: c.ServerPort,
	} {
		if v != "" {
			m[k] = v
		}
	}

	return m
}
