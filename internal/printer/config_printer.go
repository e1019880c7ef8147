package printer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/totorojs/totoro/internal/cmd/output"
)

var _ output.Printer[map[string]any] = (*ConfigPrinter)(nil)

// ConfigPrinter prints a resolved configuration as sorted 'key: value' lines.
type ConfigPrinter struct{}

func (p *ConfigPrinter) Item(w io.Writer, elem map[string]any) error {
	keys := make([]string, 0, len(elem))
	for k := range elem {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, formatValue(elem[k])); err != nil {
			return err
		}
	}

	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = formatValue(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
