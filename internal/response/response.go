// Package response writes JSON bodies and maps application errors to HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/logger"
)

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// HTTP status code
	// example: 404
	Status int `json:"status"`

	// Error message
	// example: No company found with handle acme
	Message string `json:"message"`
}

// MessageResponse is the body of delete confirmations.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Company deleted
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// Status maps err to its HTTP status code.
// Conflicts answer 401, which existing clients rely on.
func Status(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrConflict):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {status, message}. Errors outside the taxonomy are logged and
// answered with a generic 500 so internals never reach the client.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)

	var appErr *apperrors.Error
	if status == http.StatusInternalServerError || !errors.As(err, &appErr) {
		logger.Log.Errorw("internal server error", "error", err)
		JSON(w, http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
		return
	}

	JSON(w, status, ErrorResponse{Status: status, Message: appErr.Message})
}

// NotFound answers unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, ErrorResponse{Status: http.StatusNotFound, Message: "Not Found"})
}

// MethodNotAllowed answers routes matched with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, ErrorResponse{Status: http.StatusMethodNotAllowed, Message: "Method Not Allowed"})
}
