package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the structured failure body returned by every error path.
// The wire format is a single human-readable detail field; the status is
// carried out of band as the HTTP status code.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Detail)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewNotFoundError(detail string) *APIError {
	return &APIError{
		Status: http.StatusNotFound,
		Detail: detail,
	}
}

func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

func NewValidationError(detail string) *APIError {
	return &APIError{
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
	}
}

func NewRateLimitError(retryAfter int) *APIError {
	return &APIError{
		Status: http.StatusTooManyRequests,
		Detail: fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter),
	}
}

func NewInternalError(detail string) *APIError {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &APIError{
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}
