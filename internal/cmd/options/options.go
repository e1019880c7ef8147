package options

import (
	"fmt"
	"strings"

	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/resolver"
)

// InitFunc writes a skeleton project configuration file at path.
type InitFunc func(path string, defaults config.Defaults) error

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	// ResolverOptions are applied after the options the command derives from its flags.
	ResolverOptions []resolver.Option

	// Initializer creates project configuration files.
	Initializer InitFunc

	// WorkDir is the directory relative project config paths are created in.
	// Defaults to the process working directory.
	WorkDir string
}

func defaultOptions() CmdOptions {
	return CmdOptions{
		Initializer: config.Init,
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithResolverOptions(opt ...resolver.Option) CmdOption {
	return func(o *CmdOptions) error {
		o.ResolverOptions = append(o.ResolverOptions, opt...)
		return nil
	}
}

func WithInitializer(fn InitFunc) CmdOption {
	return func(o *CmdOptions) error {
		if fn == nil {
			return fmt.Errorf("initializer cannot be nil")
		}
		o.Initializer = fn
		return nil
	}
}

func WithWorkDir(dir string) CmdOption {
	return func(o *CmdOptions) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("work dir cannot be empty")
		}
		o.WorkDir = dir
		return nil
	}
}
