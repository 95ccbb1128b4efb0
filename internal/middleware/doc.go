// Package middleware provides the HTTP middleware for the activities
// service.
//
// # Available Middleware
//
//   - RequestID: accept or mint an X-Request-ID per request
//   - Logger: structured request log line plus request metrics
//   - Recovery: panic to 500 with a structured error body
//   - CORS: allow-listed origins and preflight handling
//   - RateLimit: fixed-window limiting per client IP
//   - Idempotency: response replay for keyed POST retries
//   - Compress: gzip for clients that accept it (SSE excluded)
//
// # Composition
//
// Middlewares wrap the router through Chain; the first listed is the
// outermost:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
// The request ID is stored in the request context and read back with
// GetRequestID(ctx).
package middleware
