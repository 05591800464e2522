package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nprest/showkit/internal/assets"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the scaffold layout of a project root",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		publicDir := filepath.Join(cfg.Root, "public")
		info, err := os.Stat(publicDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%s is not a site root: missing public/ directory", cfg.Root)
		}

		lister := assets.NewOS(cfg.Root)
		css := lister.Stylesheets()
		js := lister.Javascripts()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "root:        %s\n", cfg.Root)
		fmt.Fprintf(out, "stylesheets: %d\n", len(css))
		fmt.Fprintf(out, "javascripts: %d\n", len(js))

		if len(css) == 0 {
			fmt.Fprintln(out, "note: no stylesheets under public/css")
		}
		if len(js) == 0 {
			fmt.Fprintln(out, "note: no scripts under public/js")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
