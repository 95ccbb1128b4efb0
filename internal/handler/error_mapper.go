package handler

import (
	"errors"
	"log/slog"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and detail messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrActivityNotFound):
		return model.NewNotFoundError("Activity not found")

	// ===== Roster Errors → 400 =====
	case errors.Is(err, service.ErrAlreadyRegistered):
		return model.NewBadRequestError("Student is already signed up")
	case errors.Is(err, service.ErrNotRegistered):
		return model.NewBadRequestError("Student is not signed up for this activity")

	// ===== Default → 500 =====
	default:
		slog.Error("unexpected service error", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}
}
