package flags

import (
	"github.com/spf13/pflag"

	"github.com/totorojs/totoro/internal/config"
)

// Flag names for the run configuration options.
const (
	FlagNameRunner     = "runner"
	FlagNameAdapter    = "adapter"
	FlagNameClientRoot = "client-root"
	FlagNameBrowsers   = "browsers"
	FlagNameCharset    = "charset"
	FlagNameTimeout    = "timeout"
	FlagNameClientHost = "client-host"
	FlagNameClientPort = "client-port"
	FlagNameServerHost = "server-host"
	FlagNameServerPort = "server-port"
	FlagNameList       = "list"
)

// Overrides holds the run configuration options given on the command line.
type Overrides struct {
	fs *pflag.FlagSet

	runner     string
	adapter    string
	clientRoot string
	browsers   []string
	charset    string
	timeout    int
	clientHost string
	clientPort string
	serverHost string
	serverPort string
	list       bool
}

// InitOverrideFlags registers the run configuration flags on fs.
func InitOverrideFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{fs: fs}

	fs.StringVarP(&o.runner, FlagNameRunner, "R", "", "runner URL or path to the runner HTML file")
	fs.StringVarP(&o.adapter, FlagNameAdapter, "A", "", "adapter URL, built-in adapter name or path to the adapter script")
	fs.StringVarP(&o.clientRoot, FlagNameClientRoot, "O", "", "directory exposed by the test server")
	fs.StringSliceVarP(&o.browsers, FlagNameBrowsers, "b", nil, "browsers to run the tests in")
	fs.StringVarP(&o.charset, FlagNameCharset, "c", "", "charset of the test files")
	fs.IntVarP(&o.timeout, FlagNameTimeout, "t", 0, "test timeout in minutes")
	fs.StringVar(&o.clientHost, FlagNameClientHost, "", "host browsers reach the client on")
	fs.StringVar(&o.clientPort, FlagNameClientPort, "", "port browsers reach the client on")
	fs.StringVarP(&o.serverHost, FlagNameServerHost, "H", "", "host of the test server")
	fs.StringVarP(&o.serverPort, FlagNameServerPort, "P", "", "port of the test server")
	fs.BoolVarP(&o.list, FlagNameList, "l", false, "list the available browsers instead of running tests")

	return o
}

// Values returns the options explicitly set on the command line, keyed by configuration key.
func (o *Overrides) Values() map[string]any {
	values := map[string]any{}
	if o == nil || o.fs == nil {
		return values
	}

	set := func(flag string, key string, v any) {
		if o.fs.Changed(flag) {
			values[key] = v
		}
	}

	set(FlagNameRunner, config.KeyRunner, o.runner)
	set(FlagNameAdapter, config.KeyAdapter, o.adapter)
	set(FlagNameClientRoot, config.KeyClientRoot, o.clientRoot)
	set(FlagNameBrowsers, config.KeyBrowsers, o.browsers)
	set(FlagNameCharset, config.KeyCharset, o.charset)
	set(FlagNameTimeout, config.KeyTimeout, o.timeout)
	set(FlagNameClientHost, config.KeyClientHost, o.clientHost)
	set(FlagNameClientPort, config.KeyClientPort, o.clientPort)
	set(FlagNameServerHost, config.KeyServerHost, o.serverHost)
	set(FlagNameServerPort, config.KeyServerPort, o.serverPort)
	set(FlagNameList, config.KeyList, o.list)

	return values
}
