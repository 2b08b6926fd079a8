package minio

import (
	"context"
	"fmt"
	"sync"

	"spyglass-srv/config"
	"spyglass-srv/pkg/minio"
)

const connectRetries = 3

var (
	instance minio.MinIO
	mu       sync.RWMutex
)

// Connect creates the shared MinIO client and makes sure every configured
// bucket exists. A failed call leaves nothing behind.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.ConnectWithRetry(ctx, connectRetries); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	for _, bucket := range buckets(cfg) {
		if err := client.EnsureBucket(ctx, bucket); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ensure bucket %s: %w", bucket, err)
		}
	}

	instance = client
	return instance, nil
}

// buckets lists the configured buckets once each, skipping blanks.
func buckets(cfg *config.MinIOConfig) []string {
	var out []string
	seen := map[string]bool{}
	for _, b := range []string{cfg.NarrationBucket, cfg.SpeechBucket, cfg.VideoBucket} {
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

// Disconnect stops the async uploader and drops the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
