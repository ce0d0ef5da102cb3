package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProjectNotFound    = "PROJECT_NOT_FOUND"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeUnsupportedLocale  = "UNSUPPORTED_LOCALE"
	ErrCodeEmptyMessage       = "EMPTY_MESSAGE"
	ErrCodeUnknownPhone       = "UNKNOWN_PHONE"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrProjectNotFound    = NewDomainError(ErrCodeProjectNotFound, "Project not found")
	ErrInvalidID          = NewDomainError(ErrCodeInvalidID, "Identifier must be a positive integer")
	ErrUnsupportedLocale  = NewDomainError(ErrCodeUnsupportedLocale, "Locale must be one of en, ge, ru")
	ErrEmptyMessage       = NewDomainError(ErrCodeEmptyMessage, "Message must not be empty")
	ErrUnknownPhone       = NewDomainError(ErrCodeUnknownPhone, "Phone number is not in the contact list")
	ErrCatalogUnavailable = NewDomainError(ErrCodeCatalogUnavailable, "Catalogue data is not loaded")
)

// ErrorCode extracts the domain code from err, or "" if err is not a DomainError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
