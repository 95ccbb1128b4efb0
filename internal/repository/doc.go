// Package repository implements the activity store.
//
// The store is a process-wide in-memory mapping from activity name to
// model.Activity, created once at startup from fixed seed data. It is
// injected into the service layer rather than accessed as a global, so
// tests can construct isolated stores and a persistent implementation
// could be swapped in behind the same interface.
//
// # Concurrency
//
// A single sync.Mutex guards the mapping. Every operation, including the
// full check-then-mutate sequence of AddParticipant and RemoveParticipant,
// runs under the lock, so the roster invariants (no duplicate emails,
// consistent not-found semantics) hold under concurrent requests.
//
// # Snapshots
//
// All reads hand out deep copies. Mutating a returned Activity never
// affects the store.
package repository
