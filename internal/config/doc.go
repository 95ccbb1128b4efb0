// Package config manages application configuration for the activities API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - StaticConfig: front-end asset directory
//   - RateLimitConfig: per-client request limits
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT             - HTTP server port (default: 8000)
//	SERVER_ENV              - development, production, or test
//	SERVER_READ_TIMEOUT     - request read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT    - response write timeout (default: 15s)
//	SERVER_SHUTDOWN_TIMEOUT - graceful shutdown deadline (default: 30s)
//	CORS_ALLOWED_ORIGINS    - comma-separated origin list
//	STATIC_DIR              - directory served under /static/
//	RATE_LIMIT_ENABLED      - toggle request rate limiting
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
//
// Durations use Go syntax ("15s", "1m"). Invalid values silently fall
// back to the default; only Validate reports hard errors.
package config
