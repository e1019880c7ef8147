package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totorojs/totoro/internal/cmd"
	cmdopts "github.com/totorojs/totoro/internal/cmd/options"
	"github.com/totorojs/totoro/internal/cmd/output"
	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/discover"
	"github.com/totorojs/totoro/internal/errors"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/flags"
	"github.com/totorojs/totoro/internal/paths"
	"github.com/totorojs/totoro/internal/printer"
	"github.com/totorojs/totoro/internal/resolver"
)

var version = "dev" // Set at build time using -ldflags

type createCmdFunc func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error)

type RootCmd struct {
	*cmd.BaseCmd
	resolverOpts []resolver.Option
	printer      output.Printer[*config.Config]
}

func Execute() error {
	rootCmd, err := NewRootCmd(&cmd.BaseCmd{})
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

func NewRootCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &RootCmd{
		BaseCmd:      baseCmd,
		resolverOpts: opts.ResolverOptions,
		printer:      &printer.LaunchPrinter{},
	}

	rootCmd := &cobra.Command{
		Use:           "totoro [flags]",
		Short:         "Runs front-end unit tests in real browsers.",
		Long:          c.longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		Args:          cobra.NoArgs,
		RunE:          c.run,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())
	c.SetOverrides(flags.InitOverrideFlags(rootCmd.PersistentFlags()))

	fns := []createCmdFunc{
		NewConfigCmd,
		NewInitCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(baseCmd, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return fmt.Sprintf(
		"Resolves the run configuration and prepares a test run.\n\n"+
			"Options are taken from flags, then TOTORO_* environment variables, then the project config file (%s), "+
			"then the global config file (~/.totoro/%s), then built-in defaults.\n\n"+
			"When no runner is configured, %s is looked up in the test directory.",
		flags.DefaultConfigFile,
		files.GlobalConfigFileName,
		discover.RunnerFileName,
	)
}

func (c *RootCmd) run(cmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	cfg, err := c.ResolveConfig(c.Overrides(), c.resolverOpts...)
	if err != nil {
		return fmt.Errorf("error resolving configuration: %w", err)
	}

	if !cfg.List {
		switch {
		case cfg.Runner == "":
			return errors.ErrRunnerNotFound
		case !paths.IsURL(cfg.Runner):
			logger.Error("Runner cannot be served", "runner", cfg.Runner)
			return fmt.Errorf("%w: '%s'", errors.ErrRunnerUnavailable, cfg.Runner)
		}
	}

	return output.NewTextHandler(cmd.OutOrStdout(), c.printer).HandleResult(cfg)
}
