// Package cli wires the application together and exposes it as a
// command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetbridge/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetbridge",
	Short: "MCP server for Google Sheets",
	Long: `Sheetbridge exposes Google Sheets and Drive operations as Model
Context Protocol (MCP) tools for AI assistants like Claude.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sheetbridge.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
