package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCourtCount  = "INVALID_COURT_COUNT"
	CodeAutoCapacity       = "AUTO_CAPACITY"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeHistoryUnavailable = "HISTORY_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Map model errors
	case errors.Is(err, model.ErrInvalidCourtCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCourtCount, "Court count must be at least 1"}}
	case errors.Is(err, model.ErrAutoCapacity):
		return &httpError{http.StatusConflict, APIError{CodeAutoCapacity, "Court count is automatic in auto capacity mode"}}
	case errors.Is(err, model.ErrEmptySender):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Sender is required"}}
	case errors.Is(err, model.ErrHistoryUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeHistoryUnavailable, "Message history is unavailable"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid token"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
