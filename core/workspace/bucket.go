package workspace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"shop-audit/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketStore is a workspace under a prefix of an object storage bucket.
type BucketStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketStore returns a Store over bucket/prefix.
func NewBucketStore(client storage.Client, bucket, prefix string) *BucketStore {
	return &BucketStore{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *BucketStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *BucketStore) Location(name string) string {
	return s.bucket + "/" + s.key(name)
}

func (s *BucketStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	// GetObject is lazy, so a missing key only surfaces on first read.
	if _, err := s.client.StatObject(ctx, s.bucket, s.key(name), minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", s.Location(name), ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", s.Location(name), err)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Location(name), err)
	}
	return obj, nil
}

func (s *BucketStore) Save(ctx context.Context, name string, data []byte, contentType string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.Location(name), err)
	}
	return nil
}

func (s *BucketStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key(name), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *BucketStore) List(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if s.prefix != "" {
		opts.Prefix = s.prefix + "/"
	}
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s.bucket, obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, opts.Prefix))
	}
	sort.Strings(names)
	return names, nil
}
