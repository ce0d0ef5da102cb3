package handler

import (
	"net/http"

	"mazee-site/internal/model"
	"mazee-site/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// APIHandler serves the catalogue as JSON.
type APIHandler struct {
	products service.ProductService
	projects service.ProjectService
	logger   zerolog.Logger
}

// NewAPIHandler creates a new JSON API handler.
func NewAPIHandler(products service.ProductService, projects service.ProjectService, logger zerolog.Logger) *APIHandler {
	return &APIHandler{
		products: products,
		projects: projects,
		logger:   logger.With().Str("handler", "api").Logger(),
	}
}

// ListProducts handles GET /api/{locale}/products requests. It accepts the
// same q, category, sort and app parameters as the all-products page.
func (h *APIHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	locale, err := localeParam(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	q := r.URL.Query()
	products, err := h.products.List(r.Context(), locale, service.ProductQuery{
		Search:       q.Get("q"),
		Category:     q.Get("category"),
		Applications: q["app"],
		Sort:         service.ParseSort(q.Get("sort")),
	})
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/{locale}/products/{id} requests.
func (h *APIHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	locale, err := localeParam(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), locale, id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListProjects handles GET /api/{locale}/projects requests.
func (h *APIHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	locale, err := localeParam(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	projects, err := h.projects.List(r.Context(), locale, r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/{locale}/projects/{id} requests.
func (h *APIHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	locale, err := localeParam(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	project, err := h.projects.GetByID(r.Context(), locale, id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func localeParam(r *http.Request) (model.Locale, error) {
	locale, ok := model.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		return "", model.ErrUnsupportedLocale
	}
	return locale, nil
}
