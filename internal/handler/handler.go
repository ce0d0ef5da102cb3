package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mazee-site/internal/middleware"
	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encoding failure cannot change the
	// response.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes err as a JSON error response. Domain errors keep their
// code and message; anything else is reported as an internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status := statusFor(err)
	resp := model.ErrorResponse{
		Error:         model.ErrCodeInternalError,
		Message:       "internal server error",
		CorrelationID: middleware.GetRequestID(r.Context()),
	}

	var de *model.DomainError
	if errors.As(err, &de) {
		resp.Error = de.Code
		resp.Message = de.Message
	}

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("handler error")

	writeJSON(w, status, resp)
}

// statusFor maps domain error codes onto HTTP statuses.
func statusFor(err error) int {
	switch model.ErrorCode(err) {
	case model.ErrCodeProductNotFound, model.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidID, model.ErrCodeUnsupportedLocale, model.ErrCodeEmptyMessage, model.ErrCodeUnknownPhone:
		return http.StatusBadRequest
	case model.ErrCodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseID parses a positive integer route parameter.
func parseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidID
	}
	return id, nil
}
