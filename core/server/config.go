package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is how long a computed report is served before it is rebuilt.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// CacheTTL returns the report cache lifetime, falling back to one minute.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
