package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nprest/showkit/internal/assets"
)

var (
	assetsJSON  bool
	assetsWatch bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the stylesheets and scripts discovered under public/",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lister := assets.NewOS(cfg.Root)
		if err := printAssets(cmd.OutOrStdout(), lister, assetsJSON); err != nil {
			return err
		}

		if assetsWatch {
			return watchAssets(cmd.Context(), cmd.OutOrStdout(), cfg.Root, lister)
		}
		return nil
	},
}

// assetReport is the JSON shape of an asset listing.
type assetReport struct {
	Stylesheets []string `json:"stylesheets"`
	Javascripts []string `json:"javascripts"`
}

func printAssets(w io.Writer, lister *assets.Lister, asJSON bool) error {
	report := assetReport{
		Stylesheets: lister.Stylesheets(),
		Javascripts: lister.Javascripts(),
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintln(w, "stylesheets:")
	for _, name := range report.Stylesheets {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "javascripts:")
	for _, name := range report.Javascripts {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}

// watchAssets re-lists on every change beneath the public asset
// directories until interrupted.
func watchAssets(ctx context.Context, w io.Writer, root string, lister *assets.Lister) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{
		filepath.Join(root, "public", "css"),
		filepath.Join(root, "public", "js"),
	} {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("not watching missing directory", "dir", dir)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching for asset changes", "root", root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			slog.Debug("asset change", "op", event.Op.String(), "name", event.Name)
			if err := printAssets(w, lister, assetsJSON); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}

func init() {
	assetsCmd.Flags().BoolVar(&assetsJSON, "json", false, "emit the listing as JSON")
	assetsCmd.Flags().BoolVar(&assetsWatch, "watch", false, "re-list whenever the asset tree changes")
	rootCmd.AddCommand(assetsCmd)
}
