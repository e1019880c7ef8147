//go:build docsgen_cli
// +build docsgen_cli

package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra/doc"

	"github.com/totorojs/totoro/cmd"
	internalcmd "github.com/totorojs/totoro/internal/cmd"
	"github.com/totorojs/totoro/internal/files"
)

// docsPath is the path to the commands documentation, relative to the repository root.
const docsPath = "./docs/commands/"

// main writes one markdown page per totoro command, it must be run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "totoro.docsgen",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	base := &internalcmd.BaseCmd{}
	base.SetLogger(logger)

	rootCmd, err := cmd.NewRootCmd(base)
	if err != nil {
		logger.Error("Failed to create root command for docs generation", "error", err)
		os.Exit(1)
	}
	rootCmd.DisableAutoGenTag = true

	if err := os.RemoveAll(docsPath); err != nil {
		logger.Error("Failed to clear docs directory", "path", docsPath, "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(docsPath, files.RegularDir); err != nil {
		logger.Error("Failed to create docs directory", "path", docsPath, "error", err)
		os.Exit(1)
	}

	if err := doc.GenMarkdownTree(rootCmd, docsPath); err != nil {
		logger.Error("Failed to generate CLI docs", "error", err)
		os.Exit(1)
	}

	logger.Info("CLI docs generated", "path", docsPath)
}
