package server

// Config holds configuration for the read-only report HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is an optional secret key required to access the API.
	// When empty, the server is open.
	ApiKey string `mapstructure:"api_key" default:""`
}
