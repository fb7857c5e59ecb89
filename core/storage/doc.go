// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that sales exports can be read from, and
// audit reports written to, an S3-compatible bucket. This abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the report bucket.
//   - PutObject: Uploads a report.
//   - GetObject: Retrieves an export as a stream.
//   - StatObject: Checks that an export exists.
//   - ListObjects: Lists objects under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "sales")
package storage
