// Package config provides configuration management for the admin console.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, session store)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials, bucket and snapshot prefix
//   - Redis: redis address and snapshot key prefix
//   - Console: session defaults (fetch rows, idle eviction)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
