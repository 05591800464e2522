package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nprest/showkit/internal/config"
	"github.com/nprest/showkit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "showkit",
	Short: "Showkit site scaffold tool",
	Long: `Showkit is a command-line interface for working with a Showkit
site project.

Available commands:
  assets     List the stylesheets and scripts discovered under public/
  check      Verify the scaffold layout of a project root
  preview    Render the page shell with the discovered asset tags

Use "showkit [command] --help" for more information about a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// rootDir is the --root persistent flag, overriding the configured
// site root.
var rootDir string

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration, letting the --root
// flag win over the environment.
func loadConfig() (*config.Config, error) {
	if rootDir != "" {
		os.Setenv("SITE_ROOT", rootDir)
	}
	return config.New()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "site project root (defaults to SITE_ROOT or .)")
}
