package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// EventsHandler streams roster changes over SSE
type EventsHandler struct {
	hub *service.RosterHub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *service.RosterHub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Stream handles GET /activities/stream - a live feed of roster events.
// Clients receive a connected event, then one event per signup or
// unregister, plus periodic heartbeats.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, model.NewInternalError("streaming not supported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// The stream outlives the server's write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	subscriberID := uuid.New().String()
	sub := h.hub.Subscribe(subscriberID)
	defer h.hub.Unsubscribe(subscriberID)

	fmt.Fprintf(w, "event: connected\ndata: {\"subscriber_id\":%q}\n\n", subscriberID)
	flusher.Flush()

	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			fmt.Fprint(w, event.Format())
			flusher.Flush()

		case <-sub.Done:
			return

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}
