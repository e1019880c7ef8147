package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totorojs/totoro/internal/cmd"
	cmdopts "github.com/totorojs/totoro/internal/cmd/options"
	"github.com/totorojs/totoro/internal/printer"
	"github.com/totorojs/totoro/internal/resolver"
)

type ConfigCmd struct {
	*cmd.BaseCmd
	format       cmd.OutputFormat
	resolverOpts []resolver.Option
}

func NewConfigCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ConfigCmd{
		BaseCmd:      baseCmd,
		format:       cmd.FormatText,
		resolverOpts: opts.ResolverOptions,
	}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Prints the resolved run configuration.",
		Long: "Prints the run configuration after merging every configuration source and " +
			"converting local runner and adapter files to URLs.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		&c.format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCmd, nil
}

func (c *ConfigCmd) run(cobraCmd *cobra.Command, _ []string) error {
	handler, err := cmd.FormatHandler[map[string]any](cobraCmd.OutOrStdout(), c.format, &printer.ConfigPrinter{})
	if err != nil {
		return err
	}

	cfg, err := c.ResolveConfig(c.Overrides(), c.resolverOpts...)
	if err != nil {
		return handler.HandleError(fmt.Errorf("error resolving configuration: %w", err))
	}

	return handler.HandleResult(cfg.Map())
}
