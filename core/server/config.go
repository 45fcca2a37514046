package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// ListenAddr returns the address string for the Fiber listener.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}
