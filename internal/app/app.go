// Package app wires the catalogue, services and handlers into the site.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"mazee-site/internal/catalog"
	"mazee-site/internal/config"
	"mazee-site/internal/handler"
	"mazee-site/internal/i18n"
	"mazee-site/internal/repository"
	"mazee-site/internal/router"
	"mazee-site/internal/service"
	"mazee-site/internal/view"
	"mazee-site/internal/whatsapp"

	"github.com/rs/zerolog"
)

// App is a fully wired site.
type App struct {
	Store   *catalog.Store
	Handler http.Handler
}

// New loads the catalogue through loader and builds the HTTP handler.
func New(ctx context.Context, cfg *config.Config, loader catalog.Loader, logger zerolog.Logger) (*App, error) {
	store := catalog.NewStore(loader, logger)
	if err := store.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	bundle, err := i18n.DefaultBundle()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	renderer, err := view.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(store, logger)
	projectRepo := repository.NewProjectRepository(store, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	projectService := service.NewProjectService(projectRepo, logger)

	// Initialize HTTP handlers
	book := whatsapp.NewBook(whatsapp.DefaultPhones)
	handlers := router.Handlers{
		Pages:   handler.NewPageHandler(productService, projectService, renderer, bundle, book, cfg.Site.BaseURL, cfg.Site.DefaultLocale, logger),
		Contact: handler.NewContactHandler(productService, book, bundle, logger),
		API:     handler.NewAPIHandler(productService, projectService, logger),
		SEO:     handler.NewSEOHandler(productService, projectService, cfg.Site.BaseURL, store.LoadedAt, logger),
		System:  handler.NewSystemHandler(store, logger),
	}

	return &App{
		Store:   store,
		Handler: router.New(handlers, cfg.Site.DefaultLocale, cfg.Auth.AdminAPIKey, logger),
	}, nil
}

// NewLoader picks the catalogue source: DATA_DIR when set, the embedded
// documents otherwise, with S3 in front when enabled.
func NewLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Loader {
	var local catalog.Loader
	if cfg.Data.Dir != "" {
		local = catalog.NewFSLoader(os.DirFS(cfg.Data.Dir), cfg.Data.Dir, logger)
	} else {
		local = catalog.NewFSLoader(catalog.EmbeddedFS(), "embedded", logger)
	}

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local catalog documents (S3 disabled)")
		return local
	}

	remote, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, cfg.S3.Endpoint, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local catalog only")
		return local
	}
	return catalog.NewFallbackLoader(remote, local, logger)
}
