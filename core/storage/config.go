package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding session snapshots.
	Bucket string `mapstructure:"bucket" default:"console"`
	// Prefix is the object key prefix of session snapshots.
	Prefix string `mapstructure:"prefix" default:"sessions"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RetentionHours is how long an untouched snapshot object is kept before
	// `check --fix` prunes it. Zero keeps snapshots forever.
	RetentionHours int `mapstructure:"retention_hours" default:"0"`
}

// Timeout returns the connection timeout, 30 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Retention returns the snapshot retention, zero when snapshots never expire.
func (c Config) Retention() time.Duration {
	return time.Duration(max(c.RetentionHours, 0)) * time.Hour
}
