// Package storage wraps an S3-compatible object store for mod files and
// thumbnails. Works with AWS S3, MinIO and other path-style backends.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/InderX84/FarmX/config"
)

// Store uploads and deletes objects on an S3-compatible backend.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewStore builds a Store from the server configuration. Returns nil when
// object storage is not configured; callers treat a nil store as "uploads
// disabled" and require external download links instead.
func NewStore(cfg *config.Configuration) (*Store, error) {
	if cfg.StorageBucket == "" {
		return nil, nil
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, errors.New("storage access key and secret key are required")
	}

	endpoint := cfg.StorageEndpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.StorageRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.StorageUsePath
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &Store{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist. Called once at
// startup.
func (s *Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

// Upload stores an object and returns its public URL.
func (s *Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.PublicURL(key), nil
}

// Delete removes an object. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// PublicURL returns the externally reachable URL for a stored object.
func (s *Store) PublicURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// KeyFromURL extracts the storage key from a public URL previously returned
// by PublicURL. Returns an empty string for foreign URLs.
func (s *Store) KeyFromURL(rawURL string) string {
	if s.publicURL != "" && strings.HasPrefix(rawURL, s.publicURL+"/") {
		return strings.TrimPrefix(rawURL, s.publicURL+"/")
	}
	prefix := fmt.Sprintf("https://%s.s3.amazonaws.com/", s.bucket)
	if strings.HasPrefix(rawURL, prefix) {
		return strings.TrimPrefix(rawURL, prefix)
	}
	return ""
}
