// Package shopkeep connects the reconciliation engine to ShopKeep style sales
// exports.
//
// It owns the tabular boundary: column profiles map export headers (with
// their known aliases) onto the typed records of core/reconcile, and the
// three report sheets are rendered with the fixed column order and the
// literal Yes / NO!!! flags auditors expect.
//
// # Service
//
// Service loads the exports from a workspace.Store, runs the engine, writes the
// item, order and total-items-sold reports and optionally hands the run to an
// Archiver. Each run is counted by a metrics.Recorder when one is attached.
//
// # HTTP
//
// Handler serves the latest report from a TTL cache (rebuilt at most once at a
// time) under /reports, and single item lookups under /stock/lookup.
package shopkeep
