package router

import "time"

// Config holds the settings of the default middleware chain.
type Config struct {
	// Timeout bounds request handling, enrichment included. Zero disables it.
	Timeout time.Duration
	// QuietdownRoutes are paths the logging middleware skips.
	QuietdownRoutes []string
	// HideHeaders are request headers redacted in logs.
	HideHeaders []string
	CORS        CORSConfig
}

// CORSConfig controls the CORS middleware. It is only installed when at least
// one origin is configured.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}
