// Package workspace locates the sales exports a reconciliation run reads and
// the reports it writes.
//
// A workspace is either a local directory (DirStore) or a prefix inside an
// object storage bucket (BucketStore). Both implement Store, so the shopkeep
// service and the integrity checks do not care where the files live.
//
// Config names every file: the stock exports (several may be merged), the
// order lines export, the optional register sales export and the three report
// outputs.
package workspace
