// Package model defines the domain entities and wire types for the
// activities service.
//
// The central entity is Activity: an extracurricular offering with a
// description, a meeting schedule, an advisory capacity, and an ordered
// roster of participant emails. Activities are identified by name, which is
// the key of the store's mapping; the Activity struct itself does not carry
// the name.
//
// # JSON Serialization
//
// All models use json struct tags matching the public API contract:
//
//	type Activity struct {
//	    Description     string   `json:"description"`
//	    Schedule        string   `json:"schedule"`
//	    MaxParticipants int      `json:"max_participants"`
//	    Participants    []string `json:"participants"`
//	}
//
// # Error Types
//
// API failures are represented by APIError, serialized as a body with a
// single detail field:
//
//	{"detail": "Activity not found"}
//
// Constructor functions (NewNotFoundError, NewBadRequestError, ...) pair a
// detail message with the matching HTTP status.
package model
