// Package storage connects to the object storage holding session snapshots.
//
// It wraps the MinIO Go client behind the Client interface so that the
// object-backed session store (core/snapshot) can run against AWS S3, a
// self-hosted MinIO instance, or the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: Prepare the snapshot bucket.
//   - PutObject / GetObject: Write and read one serialized session.
//   - RemoveObject: Drop a deleted session.
//   - ListObjects / RemoveObjects: Prune snapshots older than the configured
//     retention (see snapshot.Object.Prune and `check --fix`).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
