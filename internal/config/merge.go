package config

import (
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// layerValues holds the known options of one configuration layer.
// Nil fields are absent from the layer.
type layerValues struct {
	Browsers   *[]string `mapstructure:"browsers"`
	Runner     *string   `mapstructure:"runner"`
	Adapter    *string   `mapstructure:"adapter"`
	ClientRoot *string   `mapstructure:"clientRoot"`
	Charset    *string   `mapstructure:"charset"`
	Timeout    *int      `mapstructure:"timeout"`
	ClientHost *string   `mapstructure:"clientHost"`
	ClientPort *string   `mapstructure:"clientPort"`
	ServerHost *string   `mapstructure:"serverHost"`
	ServerPort *string   `mapstructure:"serverPort"`
	List       *bool     `mapstructure:"list"`
}

type layer struct {
	Values layerValues    `mapstructure:",squash"`
	Extra  map[string]any `mapstructure:",remain"`
}

// Merge combines configuration layers given in descending precedence:
// for each key the value from the first layer holding a non-null value wins.
// False booleans and empty strings count as set, so a higher layer can switch an option off.
// Values are never merged into each other, and the layers are left untouched.
func Merge(layers ...map[string]any) (map[string]any, error) {
	var merged layerValues
	extra := map[string]any{}

	for i, values := range layers {
		if len(values) == 0 {
			continue
		}

		var l layer
		if err := decode(values, &l); err != nil {
			return nil, fmt.Errorf("%w: config layer %d: %w", ErrInvalidValue, i, err)
		}

		// Fields are pointers, so a field set by a higher layer is kept as a whole.
		if err := mergo.Merge(&merged, l.Values, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging config layer %d: %w", i, err)
		}

		for k, v := range l.Extra {
			if _, ok := extra[k]; !ok && v != nil {
				extra[k] = v
			}
		}
	}

	out := merged.flatten()
	maps.Copy(out, extra)

	return out, nil
}

func (v layerValues) flatten() map[string]any {
	out := map[string]any{}

	if v.Browsers != nil {
		out[KeyBrowsers] = *v.Browsers
	}
	if v.Timeout != nil {
		out[KeyTimeout] = *v.Timeout
	}
	if v.List != nil {
		out[KeyList] = *v.List
	}

	for k, s := range map[string]*string{
		KeyRunner:     v.Runner,
		KeyAdapter:    v.Adapter,
		KeyClientRoot: v.ClientRoot,
		KeyCharset:    v.Charset,
		KeyClientHost: v.ClientHost,
		KeyClientPort: v.ClientPort,
		KeyServerHost: v.ServerHost,
		KeyServerPort: v.ServerPort,
	} {
		if s != nil {
			out[k] = *s
		}
	}

	return out
}
