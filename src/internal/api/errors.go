package api

import (
	"encoding/json"
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/errors"
	"github.com/shourov-bot/bot-panel/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed request data, such as broken JSON.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeValidationFailed indicates a well-formed request with invalid fields.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeUnauthorized indicates rejected credentials or a missing token.
	ErrCodeUnauthorized ErrorCode = "unauthorized"

	// ErrCodeConflict indicates the request clashes with the current state.
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"
)

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, code ErrorCode, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(contract.ErrorResponse{
		Message: message,
		Code:    string(code),
		Field:   field,
	}); err != nil {
		log.Debugf("Failed to write error response: %v", err)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, ErrCodeInvalidRequest, message, "")
}

// WriteValidationError writes a 400 Bad Request naming the offending field.
func WriteValidationError(w http.ResponseWriter, message, field string) {
	WriteError(w, http.StatusBadRequest, ErrCodeValidationFailed, message, field)
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, ErrCodeNotFound, resource+" not found", "")
}

// WriteUnauthorized writes a 401 Unauthorized error.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message, "")
}

// WriteConflict writes a 409 Conflict error.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, ErrCodeConflict, message, "")
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, ErrCodeInternalError, message, "")
}

// writeServiceError maps a domain error onto an HTTP error response.
func writeServiceError(w http.ResponseWriter, err error) {
	message := errors.MessageOf(err, "Internal server error")

	switch errors.CodeOf(err) {
	case errors.ErrCodeValidation:
		WriteValidationError(w, message, "")
	case errors.ErrCodeNotFound:
		WriteError(w, http.StatusNotFound, ErrCodeNotFound, message, "")
	case errors.ErrCodeUnauthorized:
		WriteUnauthorized(w, message)
	case errors.ErrCodeConflict:
		WriteConflict(w, message)
	default:
		log.Errorf("Request failed: %v", err)
		WriteInternalError(w, message)
	}
}
