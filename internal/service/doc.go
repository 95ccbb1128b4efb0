// Package service implements the business logic of the activities service.
//
// ActivityService orchestrates the store: listing activities, signing
// students up, and unregistering them. It owns the domain error
// vocabulary and maps store outcomes onto it.
//
// # Repository Interface
//
// The service defines its own ActivityRepository interface, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the in-memory store implementation
//   - Context passed through for parity with I/O-backed implementations
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrActivityNotFound  = errors.New("activity not found")
//	    ErrAlreadyRegistered = errors.New("student is already signed up")
//	)
//
// Handlers translate these into HTTP failures with errors.Is.
//
// # Roster Events
//
// RosterHub fans successful mutations out to SSE subscribers. Publishing
// never blocks; a subscriber that cannot keep up misses events rather than
// stalling a signup.
package service
