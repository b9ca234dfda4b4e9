package redis

// Config holds configuration for the redis connection.
type Config struct {
	// Addr is the host:port of the redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the redis database number.
	DB int `mapstructure:"db" default:"0"`
	// KeyPrefix is prepended to every snapshot key.
	KeyPrefix string `mapstructure:"key_prefix" default:"admin-console:session:"`
	// TTLMinutes expires stored snapshots. Zero keeps them forever.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"1440"`
	// TimeoutSeconds is the dial and I/O timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
