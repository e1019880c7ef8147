package config

import (
	"slices"
)

const (
	DefaultCharset    = "utf-8"
	DefaultTimeout    = 5
	DefaultClientHost = "127.0.0.1"
	DefaultClientPort = "9998"
	DefaultServerHost = "127.0.0.1"
	DefaultServerPort = "9999"
)

// DefaultBrowsers returns the browsers tests run in when none are configured.
func DefaultBrowsers() []string {
	return []string{"chrome", "firefox", "safari", "ie/9", "ie/8", "ie/7", "ie/6"}
}

// Defaults is the lowest-precedence configuration layer.
// It is built once per process and never modified afterwards.
type Defaults struct {
	browsers   []string
	charset    string
	timeout    int
	clientHost string
	clientPort string
	serverHost string
	serverPort string
}

// NewDefaults returns the built-in defaults, using clientHost as the address browsers reach the client on.
// An empty clientHost falls back to DefaultClientHost.
func NewDefaults(clientHost string) Defaults {
	if clientHost == "" {
		clientHost = DefaultClientHost
	}

	return Defaults{
		browsers:   DefaultBrowsers(),
		charset:    DefaultCharset,
		timeout:    DefaultTimeout,
		clientHost: clientHost,
		clientPort: DefaultClientPort,
		serverHost: DefaultServerHost,
		serverPort: DefaultServerPort,
	}
}

// Browsers returns a copy of the default browser list.
func (d Defaults) Browsers() []string {
	return slices.Clone(d.browsers)
}

// Layer returns the defaults as a fresh configuration layer, safe to modify.
func (d Defaults) Layer() map[string]any {
	layer := map[string]any{
		KeyCharset:    d.charset,
		KeyClientHost: d.clientHost,
		KeyClientPort: d.clientPort,
		KeyServerHost: d.serverHost,
		KeyServerPort: d.serverPort,
	}
	if len(d.browsers) > 0 {
		layer[KeyBrowsers] = slices.Clone(d.browsers)
	}
	if d.timeout != 0 {
		layer[KeyTimeout] = d.timeout
	}

	return layer
}
