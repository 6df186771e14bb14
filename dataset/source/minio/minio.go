// Package minio provides a dataset source backed by MinIO and other
// S3-compatible object stores.
package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/clusterstep/dataset/source"
)

// Source fetches a dataset object from a MinIO bucket.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates a MinIO dataset source for the given bucket and key.
func New(client *minio.Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Fetch opens the object for reading.
func (s *Source) Fetch(ctx context.Context) (io.ReadCloser, error) {
	// Stat first to surface missing keys as ErrNotFound instead of a
	// deferred read error.
	if _, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, source.ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return obj, nil
}
