// Package server holds the HTTP server configuration and constants.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure and the valid session store drivers.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the session store
// (memory, database, object, redis).
//
// # Errors
//
// StatusFor maps the sentinel errors of core/console and core/snapshot to
// HTTP status codes; Error and BadRequest write the JSON error body shared by
// every feature handler.
//
// # Usage
//
// This package is embedded by core/config and read by the start and check
// commands to select the snapshot backend.
package server
