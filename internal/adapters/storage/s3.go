package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"eventoslisting/internal/domain"
)

// keyPrefix groups every uploaded image under one folder in the bucket.
const keyPrefix = "eventos"

// S3Config holds configuration for the S3-backed blob store.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type s3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Store returns a BlobStore that uploads images to an S3 bucket and
// returns the public object URL.
func NewS3Store(config S3Config) domain.BlobStore {
	awsCfg := aws.Config{
		Region: config.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			),
		),
	}
	return &s3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: config.Bucket,
		region: config.Region,
	}
}

func (s *s3Store) Store(ctx context.Context, filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	key := path.Join(keyPrefix, uuid.NewString()+ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Remove deletes the object behind a previously returned URL. URLs that do
// not point into this bucket are ignored.
func (s *s3Store) Remove(ctx context.Context, url string) error {
	host := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(url, host) {
		return nil
	}
	key := strings.TrimPrefix(url, host)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
