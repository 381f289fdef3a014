// Package storage holds uploaded images in an S3-compatible object
// store while their analysis jobs wait in the queue.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"

	"github.com/sevrusik/turthsnapbot/pkg/config"
)

// Store wraps a bucket of short-lived image blobs.
type Store struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// New connects to the object store and ensures the bucket exists with
// a 1-day expiry rule on temporary uploads. The lifecycle rule is the
// safety net; the worker deletes blobs as soon as jobs finish.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	store := &Store{
		client: client,
		bucket: cfg.Bucket,
		logger: slog.With("component", "storage"),
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
	}

	lc := lifecycle.NewConfiguration()
	lc.Rules = []lifecycle.Rule{
		{
			ID:         "expire-temp-uploads",
			Status:     "Enabled",
			RuleFilter: lifecycle.Filter{Prefix: "temp/"},
			Expiration: lifecycle.Expiration{Days: 1},
		},
	}
	if err := client.SetBucketLifecycle(ctx, cfg.Bucket, lc); err != nil {
		// Some backends reject lifecycle configs; the cleanup service
		// covers blob expiry on its own.
		store.logger.Warn("failed to set bucket lifecycle", "bucket", cfg.Bucket, "error", err)
	}

	return store, nil
}

// Ping verifies the bucket is still reachable. Used by health checks.
func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("object store unreachable: %w", err)
	}
	if !ok {
		return fmt.Errorf("bucket %q is missing", s.bucket)
	}
	return nil
}

// BlobKey allocates a fresh key for one upload. Keys are uuid-scoped
// per user so concurrent uploads never collide.
func BlobKey(userID int64, ext string) string {
	return fmt.Sprintf("temp/%d/%s.%s", userID, uuid.NewString(), ext)
}

// Put stores an image blob.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to store blob %s: %w", key, err)
	}
	return nil
}

// Get retrieves an image blob.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

// Delete removes a blob. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// DeleteOlderThan removes temporary blobs past maxAge and returns how
// many were deleted. Used by the cleanup service as a backstop for
// jobs that never reached their blob-deletion step.
func (s *Store) DeleteOlderThan(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	deleted := 0

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    "temp/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return deleted, fmt.Errorf("failed to list blobs: %w", obj.Err)
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("failed to delete aged blob", "key", obj.Key, "error", err)
			continue
		}
		deleted++
	}

	return deleted, nil
}
