// Package config provides configuration management for shop-audit.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section, so every key is known to Viper and can be overridden by an
// environment variable (RECONCILE_TOLERANCE_MODE -> reconcile.tolerance_mode).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and report cache TTL
//   - Log: Logging level and format
//   - Database: Archive database driver and connection
//   - Storage: S3/MinIO credentials and bucket
//   - Reconcile: Tolerance, lookup, order grouping and merge policy
//   - Workspace: Backend and the input/report file names
//
// List values such as WORKSPACE_STOCK_FILES are comma separated.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
