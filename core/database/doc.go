// Package database handles archive database connections and schema inspection.
//
// It wraps GORM so that reconciliation runs can be archived to either MySQL or
// a local SQLite file, selected by Config.Driver.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// check uses it to confirm the archive tables match the models the archive
// feature migrates.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Archive database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "audit_runs")
package database
