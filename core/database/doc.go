// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the
// application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings
// the server within the configured timeout. SQLite is meant for local runs
// and tests; Name is then the database file (":memory:" works too).
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both drivers, and
// MissingColumns compares them against an expected set. The check command
// uses this to verify the session snapshot table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "console_snapshots", []string{"id", "data"})
package database
