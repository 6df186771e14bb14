// Package s3 provides a dataset source backed by AWS S3.
package s3

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/clusterstep/dataset/source"
)

// DownloadAPI is the subset of the S3 client the source needs.
// *s3.Client satisfies it.
type DownloadAPI interface {
	manager.DownloadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Source fetches a dataset object from an S3 bucket.
type Source struct {
	client DownloadAPI
	bucket string
	key    string
}

// New creates an S3 dataset source for the given bucket and key.
func New(client DownloadAPI, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// NewFromDefaultConfig builds the S3 client from the ambient AWS config
// (environment, shared config files, instance role).
func NewFromDefaultConfig(ctx context.Context, bucket, key string) (*Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return New(s3.NewFromConfig(cfg), bucket, key), nil
}

// Fetch downloads the object into memory and returns a reader over it.
// Datasets here are small tabular files; the ranged, retrying download of
// s3/manager is still worth having on flaky links.
func (s *Source) Fetch(ctx context.Context) (io.ReadCloser, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, source.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, source.ErrNotFound
		}
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, aws.ToInt64(head.ContentLength)))
	downloader := manager.NewDownloader(s.client)

	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}); err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
