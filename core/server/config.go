package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Store selects where console sessions are persisted (memory, database, object, redis).
	Store string `mapstructure:"store" default:"memory"`
}

const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreObject   = "object"
	StoreRedis    = "redis"
)

// IsValidStore checks if the configured session store is valid.
func (c Config) IsValidStore() bool {
	switch c.Store {
	case StoreMemory, StoreDatabase, StoreObject, StoreRedis:
		return true
	default:
		return false
	}
}
