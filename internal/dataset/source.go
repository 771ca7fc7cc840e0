package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source is where the raw listings CSV comes from. The loader reads it
// exactly once per (re)load.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Describe() string
}

// FileSource reads the CSV from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	return f, nil
}

func (s *FileSource) Describe() string {
	return "file:" + s.Path
}

// ObjectSource reads the CSV from an S3-compatible bucket.
type ObjectSource struct {
	client *minio.Client
	bucket string
	object string
}

// NewObjectSource creates an S3-backed source for the dataset object.
func NewObjectSource(endpoint, accessKey, secretKey, bucket, object, region string, useSSL bool) (*ObjectSource, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &ObjectSource{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset object: %w", err)
	}
	return obj, nil
}

func (s *ObjectSource) Describe() string {
	return "s3:" + s.bucket + "/" + s.object
}
