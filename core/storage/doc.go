// Package storage provides read access to S3-compatible object storage.
//
// It wraps the MinIO Go client behind a small interface covering just the
// operations an audit needs: verifying the bucket, streaming a document, and
// listing what the network team has published. The auditor deliberately has
// no write operations; stores are only ever mutated through an approved
// change, never by the tool that detects drift.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making storage
// interactions easy to mock in unit tests (see core/storage/mocks). It works
// against both AWS S3 and self-hosted MinIO.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves a state document as a stream.
//   - ListObjects: Lists published documents (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "netops-state")
package storage
