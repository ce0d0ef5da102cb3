package router

import (
	"net/http"

	"mazee-site/internal/handler"
	"mazee-site/internal/middleware"
	"mazee-site/internal/model"
	"mazee-site/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Pages   *handler.PageHandler
	Contact *handler.ContactHandler
	API     *handler.APIHandler
	SEO     *handler.SEOHandler
	System  *handler.SystemHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// The admin routes are only mounted when apiKey is set.
func New(h Handlers, defaultLocale model.Locale, apiKey string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> LocalePrefix -> Locale
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.LocalePrefix)
	r.Use(middleware.Locale(defaultLocale, logger))

	r.NotFound(h.Pages.NotFound)

	// Health check endpoint (no authentication required)
	r.Get("/health", h.System.Health)

	r.Get("/", h.Pages.Home)
	r.Get("/all-product", h.Pages.Products)
	r.Get("/all-projects", h.Pages.Projects)
	r.Get("/catalog/{id}", h.Pages.Product)
	r.Get("/project-detail/{id}", h.Pages.Project)
	r.Get("/welcome", h.Pages.Welcome)
	r.Get("/lang/{locale}", h.Pages.SwitchLocale)

	r.Get(handler.ContactPath, h.Contact.WhatsApp)
	r.Post(handler.ContactPath, h.Contact.WhatsApp)

	r.Get("/sitemap.xml", h.SEO.Sitemap)
	r.Get("/robots.txt", h.SEO.Robots)
	r.Handle("/static/*", view.Static())

	r.Route("/api/{locale}", func(r chi.Router) {
		r.Use(middleware.CORS)
		r.Get("/products", h.API.ListProducts)
		r.Get("/products/{id}", h.API.GetProduct)
		r.Get("/projects", h.API.ListProjects)
		r.Get("/projects/{id}", h.API.GetProject)
	})

	if apiKey != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(apiKey, logger))
			r.Post("/reload", h.System.Reload)
		})
	}

	return r
}
