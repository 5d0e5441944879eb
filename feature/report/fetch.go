package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"housenumber-audit/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Fetcher downloads the reference table from object storage.
type Fetcher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFetcher creates a new fetcher.
func NewFetcher(client storage.Client, bucket string, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{client: client, bucket: bucket, logger: logger}
}

// Fetch copies object to dest. The previous file stays in place until the
// download has completed.
func (f *Fetcher) Fetch(ctx context.Context, object, dest string) (n int64, err error) {
	obj, err := f.client.GetObject(ctx, f.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", object, err)
	}
	defer obj.Close()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".fetch-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if n, err = io.Copy(tmp, obj); err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", object, err)
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync %s: %w", dest, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", dest, err)
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		return 0, fmt.Errorf("failed to rename %s: %w", dest, err)
	}

	f.logger.Info("Reference fetched",
		zap.String("bucket", f.bucket),
		zap.String("object", object),
		zap.String("path", dest),
		zap.Int64("bytes", n))
	return n, nil
}
