// Package storage wraps the MinIO client for the two places the tool talks
// to object storage: publishing JSON reports and fetching the reference
// table. It works against AWS S3 and self-hosted MinIO alike.
//
// The Client interface exists so services can be tested with the testify
// mock in core/storage/mocks. NewClient returns ErrDisabled when
// storage.enabled is false; callers treat that as "no storage".
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if errors.Is(err, storage.ErrDisabled) { ... }
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
package storage
