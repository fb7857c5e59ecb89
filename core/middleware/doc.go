// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the report endpoints.
//   - rayid: Tags every request with a RayID, stored in the context and echoed
//     in the X-Ray-ID response header so logs can be correlated.
//
// Request metrics live in core/metrics.
package middleware
