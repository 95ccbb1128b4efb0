// Package helpers provides test utility functions for the activities API.
//
// The helpers package contains application wiring factories, URL
// builders, and assertion helpers shared by the e2e test suite.
//
// # Application Wiring
//
// Stand up a fully wired application for a test:
//
//	srv := helpers.NewServer(t)
//	resp, err := http.Get(srv.URL + "/activities")
//
// Every instance gets its own freshly seeded store, so tests never
// share roster state. Background goroutines are stopped via t.Cleanup.
//
// # URL Helpers
//
// Build escaped request paths:
//
//	path := helpers.SignupPath("Chess Club", "ana@mergington.edu")
//
// # Assertion Helpers
//
// Decode and check wire-format responses:
//
//	helpers.AssertStatus(t, resp, http.StatusOK)
//	detail := helpers.DecodeDetail(t, resp)
package helpers
