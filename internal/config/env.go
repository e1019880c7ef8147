package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix of every environment variable overriding a configuration option.
const EnvPrefix = "TOTORO_"

// envOverrides maps TOTORO_* environment variables onto configuration keys.
// Zero values are treated as unset.
type envOverrides struct {
	Browsers   []string `env:"BROWSERS" envSeparator:","`
	Runner     string   `env:"RUNNER"`
	Adapter    string   `env:"ADAPTER"`
	ClientRoot string   `env:"CLIENT_ROOT"`
	Charset    string   `env:"CHARSET"`
	Timeout    int      `env:"TIMEOUT"`
	ClientHost string   `env:"CLIENT_HOST"`
	ClientPort string   `env:"CLIENT_PORT"`
	ServerHost string   `env:"SERVER_HOST"`
	ServerPort string   `env:"SERVER_PORT"`
	List       bool     `env:"LIST"`
}

// EnvLayer returns the configuration options set through TOTORO_* environment variables.
func EnvLayer() (map[string]any, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	layer := map[string]any{}

	if len(o.Browsers) > 0 {
		layer[KeyBrowsers] = o.Browsers
	}
	if o.Timeout != 0 {
		layer[KeyTimeout] = o.Timeout
	}
	if o.List {
		layer[KeyList] = true
	}

	for k, v := range map[string]string{
		KeyRunner:     o.Runner,
		KeyAdapter:    o.Adapter,
		KeyClientRoot: o.ClientRoot,
		KeyCharset:    o.Charset,
		KeyClientHost: o.ClientHost,
		KeyClientPort: o.ClientPort,
		KeyServerHost: o.ServerHost,
		KeyServerPort: o.ServerPort,
	} {
		if v != "" {
			layer[k] = v
		}
	}

	return layer, nil
}
