// Package handler provides the HTTP endpoint implementations for the
// activities service.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the dependencies it serves with
//   - Methods handle specific HTTP endpoints and read path/query parameters
//   - Response helpers from response.go standardize output format
//   - Service errors flow through MapServiceError for consistent statuses
//
// # Response Format
//
// Success bodies are written unenveloped because the public contract fixes
// their exact shapes: GET /activities returns the raw name-to-activity
// mapping, and mutations return {"message": "..."}. Failures always carry
// {"detail": "..."} with the matching HTTP status.
//
// # Endpoints
//
//   - GET    /activities                            list the roster mapping
//   - POST   /activities/{activityName}/signup      add a student
//   - DELETE /activities/{activityName}/unregister  remove a student
//   - GET    /activities/stream                     SSE roster events
//   - GET    /health                                liveness
//   - GET    /                                      redirect to the front end
package handler
