// Package metrics exposes Prometheus counters for reconciliation runs and the
// HTTP API.
//
// A Recorder registers its collectors on the Registerer it is built with, so
// tests can use a private registry while the server uses the default one and
// serves it on /metrics.
package metrics
