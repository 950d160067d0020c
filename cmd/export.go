package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/internal/export"
	"github.com/spriy4nshu/portfolio/internal/server"
	"github.com/spriy4nshu/portfolio/internal/watcher"
)

var (
	exportOut      string
	exportBasePath string
	exportWatch    bool
	exportClean    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as a static site",
	Long: `Renders the page and copies the static assets into an output directory.
With --base-path every asset and endpoint reference is prefixed so the site
can be hosted in a subdirectory, e.g. /portfolio on GitHub Pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := exportConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runExport(ctx, cfg); err != nil {
			return err
		}
		if !exportWatch {
			return nil
		}

		var paths []string
		if _, err := os.Stat(cfgFile); err == nil {
			paths = append(paths, cfgFile)
		}
		if cfg.Site.AssetsDir != "" {
			paths = append(paths, cfg.Site.AssetsDir)
		}
		if len(paths) == 0 {
			return fmt.Errorf("nothing to watch: create %s or set site.assets_dir", cfgFile)
		}

		w := watcher.New(func(string) {
			cfg, err := exportConfig(cmd)
			if err != nil {
				log.Printf("Reloading config: %v", err)
				return
			}
			if err := runExport(ctx, cfg); err != nil {
				log.Printf("Export failed: %v", err)
			}
		}, paths...)

		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// exportConfig loads the config and applies the command-line overrides.
func exportConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.OutputDir = exportOut
	}
	if cmd.Flags().Changed("base-path") {
		cfg.Site.BasePath = config.NormalizeBasePath(exportBasePath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runExport(ctx context.Context, cfg *config.Config) error {
	assets, err := server.Assets(cfg)
	if err != nil {
		return err
	}
	opts := export.OptionsFromConfig(cfg)
	opts.Clean = exportClean
	_, err = export.Run(ctx, cfg, assets, opts)
	return err
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "out", "output directory (overrides config)")
	exportCmd.Flags().StringVar(&exportBasePath, "base-path", "", "URL prefix for subdirectory hosting, e.g. /portfolio")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when the config or assets change")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "remove the output directory first")
	rootCmd.AddCommand(exportCmd)
}
