package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mergington/activities/internal/model"
)

// ActivityService defines the service operations the roster handlers use
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*model.Activity, error)
	Signup(ctx context.Context, name, email string) (*model.Activity, error)
	Unregister(ctx context.Context, name, email string) (*model.Activity, error)
}

// ActivityHandler handles the activity roster endpoints
type ActivityHandler struct {
	service ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{
		service: service,
	}
}

// List handles GET /activities - the full name-to-activity mapping
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{activityName}/signup - add a student to
// an activity's roster. The activity name path segment may contain spaces
// and is matched literally after URL decoding.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewValidationError("email query parameter is required"))
		return
	}

	if _, err := h.service.Signup(r.Context(), name, email); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{activityName}/unregister - remove
// a student from an activity's roster
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewValidationError("email query parameter is required"))
		return
	}

	if _, err := h.service.Unregister(r.Context(), name, email); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, err error) {
	WriteError(w, MapServiceError(err))
}
