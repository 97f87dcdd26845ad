package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// When empty, the API is served unauthenticated.
	ApiKey string `mapstructure:"api_key" default:""`
	// CORSOrigins is a comma-separated list of allowed origins for the
	// single-page frontend. "*" allows all.
	CORSOrigins string `mapstructure:"cors_origins" default:"*"`
}
