package handler

import (
	"context"
	"net/http"
	"time"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

// Reloader is the catalogue store as seen by the admin endpoints.
type Reloader interface {
	Reload(ctx context.Context) error
	LoadedAt() time.Time
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status          string    `json:"status"`
	CatalogLoadedAt time.Time `json:"catalogLoadedAt"`
}

// SystemHandler serves health and maintenance endpoints.
type SystemHandler struct {
	catalog Reloader
	logger  zerolog.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(catalog Reloader, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "system").Logger(),
	}
}

// Health handles GET /health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	loadedAt := h.catalog.LoadedAt()
	if loadedAt.IsZero() {
		writeError(w, r, model.ErrCatalogUnavailable, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", CatalogLoadedAt: loadedAt})
}

// Reload handles POST /admin/reload requests. A failed reload leaves the
// previous catalogue in place.
func (h *SystemHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Reload(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("catalog reload failed")
		writeError(w, r, model.NewDomainError(model.ErrCodeCatalogUnavailable, "Catalogue reload failed, previous data is still served"), h.logger)
		return
	}

	h.logger.Info().Time("loaded_at", h.catalog.LoadedAt()).Msg("catalog reloaded")
	writeJSON(w, http.StatusOK, HealthResponse{Status: "reloaded", CatalogLoadedAt: h.catalog.LoadedAt()})
}
