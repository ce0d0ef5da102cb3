package main

import (
	"fmt"

	"mazee-site/internal/app"
	"mazee-site/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every page to static files",
	Long: `Render every page in every locale, the sitemap, robots.txt and the
static assets into a directory ready for CDN hosting.`,
	Example: `  site export --out ./public`,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "public", "Output directory")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return fmt.Errorf("output directory is required")
	}

	ctx := cmd.Context()
	site, err := app.New(ctx, cfg, app.NewLoader(ctx, cfg, logger), logger)
	if err != nil {
		return err
	}

	written, err := export.New(site.Handler, site.Store, cfg.Site.DefaultLocale, logger).Export(ctx, out)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Info().Str("dir", out).Int("files", written).Msg("site exported")
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", written, out)
	return nil
}
