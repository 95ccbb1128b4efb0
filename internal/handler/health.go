package handler

import (
	"net/http"

	"github.com/mergington/activities/internal/model"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	service ActivityService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service ActivityService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

// Health handles GET /health. Reading the store proves the service is able
// to answer real queries, and the activity count is a cheap sanity signal.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError("store unavailable"))
		return
	}

	WriteJSON(w, http.StatusOK, model.HealthResponse{
		Status:     "ok",
		Activities: len(activities),
	})
}
