package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/totorojs/totoro/internal/cmd"
	cmdopts "github.com/totorojs/totoro/internal/cmd/options"
	"github.com/totorojs/totoro/internal/config"
	"github.com/totorojs/totoro/internal/flags"
	"github.com/totorojs/totoro/internal/network"
)

type InitCmd struct {
	*cmd.BaseCmd
	initializer cmdopts.InitFunc
	workDir     string
}

func NewInitCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InitCmd{
		BaseCmd:     baseCmd,
		initializer: opts.Initializer,
		workDir:     opts.WorkDir,
	}

	cobraCommand := &cobra.Command{
		Use:   "init",
		Short: "Initializes the current directory as a `totoro` project",
		Long:  c.longDescription(),
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	return cobraCommand, nil
}

func (c *InitCmd) longDescription() string {
	return fmt.Sprintf(
		"Initializes the current directory as a `totoro` project, creating a %s configuration file "+
			"listing the default browsers.\n\n"+
			"The configuration file path can be overridden using the `--%s` flag or the `%s` environment variable",
		flags.DefaultConfigFile,
		flags.FlagNameConfigFile,
		flags.EnvVarConfigFile,
	)
}

func (c *InitCmd) run(cmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	initFilePath := flags.ConfigFile
	if initFilePath == "" {
		initFilePath = flags.DefaultConfigFile
	}

	if !filepath.IsAbs(initFilePath) {
		workDir := c.workDir
		if workDir == "" {
			workDir, err = os.Getwd()
			if err != nil {
				logger.Error("Failed to get working directory", "error", err)
				return fmt.Errorf("error getting current directory: %w", err)
			}
		}
		initFilePath = filepath.Join(workDir, initFilePath)
	}

	defaults := config.NewDefaults(network.ExternalIPv4(config.DefaultClientHost))
	if err := c.initializer(initFilePath, defaults); err != nil {
		logger.Error("Project initialization failed", "error", err)
		return fmt.Errorf("error initializing totoro project: %w", err)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", initFilePath); err != nil {
		return err
	}

	return nil
}
