// Package server holds the HTTP server configuration.
//
// The start command reads Config to choose the listen port, the API key the
// auth middleware enforces, and how long the report cache keeps a computed
// reconciliation before rebuilding it from the workspace.
package server
