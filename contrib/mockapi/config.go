package mockapi

import "fmt"

// Config holds the mock server's options.
type Config struct {
	// Address to listen on (e.g. ":3000")
	Addr string
	// Optional log file path; empty logs to stderr
	LogPath string
	// Enable verbose logging and gin's debug mode
	Verbose bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Addr: ":3000",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	return nil
}
