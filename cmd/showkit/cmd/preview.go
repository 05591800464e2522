package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nprest/showkit/internal/page"
	"github.com/nprest/showkit/internal/view"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the page shell with the discovered asset tags",
	Long: `Preview renders the layout shell once, exactly as a templating
layer would see it: the configured title plus one link tag per
discovered stylesheet and one script tag per discovered script.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if previewOutput != "" && previewOutput != "-" {
			f, err := os.Create(previewOutput)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		p := page.FromConfig(cfg)
		if err := view.Shell(p, view.Index(p)).Render(w); err != nil {
			return fmt.Errorf("rendering shell: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "write the rendered shell to a file instead of stdout")
	rootCmd.AddCommand(previewCmd)
}
