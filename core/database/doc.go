// Package database handles the optional MySQL connection backing the
// upload-run history.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
// History persistence is optional: when the database is disabled or
// unreachable, upload runs proceed normally and only the audit trail is lost.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled, database connection failed", zap.Error(err))
//	}
package database
