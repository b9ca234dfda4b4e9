package console

import "time"

// Config holds the defaults of hosted sessions.
type Config struct {
	// FetchRows is the number of result rows per page.
	FetchRows int `mapstructure:"fetch_rows" default:"25"`
	// IdleTTLMinutes evicts idle sessions from memory. Zero disables eviction.
	IdleTTLMinutes int `mapstructure:"idle_ttl_minutes" default:"30"`
	// SweepSeconds is the interval between idle session sweeps.
	SweepSeconds int `mapstructure:"sweep_seconds" default:"60"`
}

// Options converts the configuration to registry options.
func (c Config) Options() Options {
	return Options{
		FetchRows: c.FetchRows,
		IdleTTL:   time.Duration(c.IdleTTLMinutes) * time.Minute,
	}
}

// SweepInterval returns the interval between idle session sweeps.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepSeconds) * time.Second
}
