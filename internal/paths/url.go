package paths

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"

	errs "github.com/totorojs/totoro/internal/errors"
)

// ServeURL converts file, a local path below clientRoot, into the URL it is served at
// by a test server listening on host and port.
// Every platform separator in the relative path becomes a forward slash.
func ServeURL(clientRoot string, file string, host string, port string) (string, error) {
	if clientRoot == "" {
		return "", fmt.Errorf("%w: no client root for '%s'", errs.ErrOutsideClientRoot, file)
	}

	rel, err := filepath.Rel(clientRoot, file)
	if err != nil {
		return "", fmt.Errorf("%w: '%s' (root: '%s'): %w", errs.ErrOutsideClientRoot, file, clientRoot, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: '%s' (root: '%s')", errs.ErrOutsideClientRoot, file, clientRoot)
	}

	addr := host
	if port != "" {
		addr = net.JoinHostPort(host, port)
	}

	u := url.URL{
		Scheme: "http",
		Host:   addr,
		Path:   "/" + filepath.ToSlash(rel),
	}

	return u.String(), nil
}
