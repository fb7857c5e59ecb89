// Package integrity validates everything a reconciliation run depends on
// before it is started.
//
// # Checks Provided
//
//   - Workspace: the configured directory or bucket prefix can be listed.
//   - Inputs: every stock and orders export exists and carries its required
//     columns. A missing register sales export is reported as a warning.
//   - Archive: when archiving is enabled, the audit tables match the GORM
//     models (columns and types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/workspace : Runs the workspace check.
//   - GET /integrity/inputs : Runs the input export check.
//   - GET /integrity/archive : Runs the archive schema check.
package integrity
