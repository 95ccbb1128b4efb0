package service

import (
	"encoding/json"
	"sync"
	"time"
)

// EventType represents the type of roster event
type EventType string

const (
	RosterEventSignup     EventType = "signup"
	RosterEventUnregister EventType = "unregister"

	// System events
	EventHeartbeat EventType = "heartbeat"
)

// RosterEvent is the payload broadcast when an activity's roster changes.
type RosterEvent struct {
	Activity     string `json:"activity"`
	Email        string `json:"email"`
	Participants int    `json:"participants"`
}

// Event represents a server-sent event
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// Format returns the SSE formatted string
func (e *Event) Format() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + string(e.Type) + "\ndata: " + string(data) + "\n\n"
}

// Subscriber represents a connected SSE client
type Subscriber struct {
	ID     string
	Events chan *Event
	Done   chan struct{}
}

// RosterHub broadcasts roster events to every subscribed SSE client. There
// is a single stream; subscribers see all activities' changes.
type RosterHub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	heartbeat   *time.Ticker
	done        chan struct{}
}

// NewRosterHub creates a hub and starts its heartbeat ticker.
func NewRosterHub() *RosterHub {
	hub := &RosterHub{
		subscribers: make(map[string]*Subscriber),
		done:        make(chan struct{}),
	}
	hub.heartbeat = time.NewTicker(30 * time.Second)
	go hub.sendHeartbeats()
	return hub
}

// Subscribe registers a new subscriber under the given ID.
func (h *RosterHub) Subscribe(subscriberID string) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{
		ID:     subscriberID,
		Events: make(chan *Event, 100), // Buffer to prevent blocking
		Done:   make(chan struct{}),
	}
	h.subscribers[subscriberID] = sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channels.
func (h *RosterHub) Unsubscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[subscriberID]; ok {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, subscriberID)
	}
}

// Publish sends an event to all subscribers. Sends never block: a
// subscriber whose buffer is full misses the event.
func (h *RosterHub) Publish(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Events <- event:
		default:
			// Buffer full, skip this subscriber
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *RosterHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

func (h *RosterHub) sendHeartbeats() {
	for {
		select {
		case <-h.heartbeat.C:
			h.Publish(&Event{
				Type: EventHeartbeat,
				Data: map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				},
			})
		case <-h.done:
			return
		}
	}
}

// Close stops the heartbeat and disconnects every subscriber.
func (h *RosterHub) Close() {
	close(h.done)
	h.heartbeat.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subscribers {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, id)
	}
}
