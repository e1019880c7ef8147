package printer

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/totorojs/totoro/internal/cmd/output"
	"github.com/totorojs/totoro/internal/config"
)

var _ output.Printer[*config.Config] = (*LaunchPrinter)(nil)

// LaunchPrinter summarizes what a test run would be started with.
type LaunchPrinter struct{}

func (p *LaunchPrinter) Item(w io.Writer, elem *config.Config) error {
	if elem == nil {
		return fmt.Errorf("no configuration to print")
	}

	server := net.JoinHostPort(elem.ServerHost, elem.ServerPort)

	if elem.List {
		_, err := fmt.Fprintf(w, "Listing available browsers on %s\n", server)
		return err
	}

	lines := []string{
		fmt.Sprintf("Runner:   %s", elem.Runner),
		fmt.Sprintf("Adapter:  %s", valueOrNone(elem.Adapter)),
		fmt.Sprintf("Root:     %s", valueOrNone(elem.ClientRoot)),
		fmt.Sprintf("Browsers: %s", valueOrNone(strings.Join(elem.Browsers, ", "))),
		fmt.Sprintf("Server:   %s", server),
		fmt.Sprintf("Client:   %s", net.JoinHostPort(elem.ClientHost, elem.ClientPort)),
		fmt.Sprintf("Timeout:  %dm", elem.Timeout),
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
