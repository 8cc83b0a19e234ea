package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds the configuration for an S3 dataset source.
type S3Config struct {
	Endpoint        string // S3 endpoint URL (for S3-compatible services)
	Region          string // AWS region
	Bucket          string // S3 bucket name
	AccessKeyID     string // AWS access key ID; empty uses the default chain
	SecretAccessKey string // AWS secret access key
}

// SourceS3 reads dataset files from an S3 bucket.
type SourceS3 struct {
	client *s3.Client
	bucket string
}

// NewSourceS3 creates an S3 source with the specified configuration.
func NewSourceS3(cfg S3Config) (*SourceS3, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and other S3-compatible services
		}
	})

	return &SourceS3{client: client, bucket: cfg.Bucket}, nil
}

// Open downloads the object at path (key) and returns its body.
// Missing keys are reported as fs.ErrNotExist so the loader can map them.
func (s *SourceS3) Open(path string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(
		context.Background(),
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(path),
		},
	)
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("object %s/%s: %w", s.bucket, path, fs.ErrNotExist)
		}
		return nil, err
	}

	return result.Body, nil
}
