package model

import "slices"

// Activity represents one extracurricular offering, keyed in the store by its name.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy of the activity. The store hands out clones so
// callers can never mutate shared state.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return &c
}

// SpotsLeft returns the advisory remaining capacity. It can go negative:
// max_participants is never enforced by signup.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// MessageResponse is the success body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}
