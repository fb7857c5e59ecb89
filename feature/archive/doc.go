// Package archive persists reconciliation runs to a SQL database.
//
// Every run written by the shopkeep service can be stored with its summary
// and its three ledgers (item lines, orders and merged totals), so earlier
// audits stay queryable after the report files are overwritten.
//
// Models carry explicit column and type tags; the integrity feature compares
// them with the live schema.
//
// # HTTP Endpoints
//
//   - GET /archive/runs : Lists recent runs (?limit=, default 20).
//   - GET /archive/runs/:id : Returns one run with its ledgers.
package archive
