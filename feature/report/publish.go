package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"housenumber-audit/core/reconcile"
	"housenumber-audit/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectName returns where the report of a relation is published.
func ObjectName(relation string) string {
	return fmt.Sprintf("reports/%s.json", relation)
}

// Publish uploads rep to the bucket, creating the bucket when needed.
func Publish(ctx context.Context, client storage.Client, bucket, relation string, rep *reconcile.Report) (string, error) {
	if err := storage.EnsureBucket(ctx, client, bucket); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	object := ObjectName(relation)
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return object, nil
}
