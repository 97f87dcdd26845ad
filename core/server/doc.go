// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in cmd/start.go; this package
// only defines the configuration surface (port, API key, CORS origins)
// consumed there.
package server
