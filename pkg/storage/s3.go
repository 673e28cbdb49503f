package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"leaguecatalog/pkg/config"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// ErrForeignURL is returned when a URL doesn't point into the store's bucket.
var ErrForeignURL = errors.New("url doesn't belong to the bucket")

// S3Store stores objects in a single bucket and addresses them by public URL.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Client creates the S3 client from static credentials.
// A custom endpoint switches to path-style addressing (MinIO, LocalStack).
func NewS3Client(cfg *config.BucketConfiguration) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.AccessSecret,
				"",
			),
		),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// PublicBaseURL returns the URL prefix of every object in bucket.
func PublicBaseURL(cfg *config.BucketConfiguration, bucket string) string {
	if cfg.Endpoint != "" {
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
}

// NewS3Store creates a store bound to bucket.
func NewS3Store(client *s3.Client, bucket string, baseURL string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put uploads body under key and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, s.bucket, err)
	}

	return s.URL(key), nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete %s from bucket %s: %w", key, s.bucket, err)
	}

	return nil
}

// URL returns the public URL of key.
func (s *S3Store) URL(key string) string {
	return s.baseURL + "/" + key
}

// KeyFromURL strips the bucket URL prefix, returning the object key.
func (s *S3Store) KeyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, url)
	}
	return key, nil
}

// NewObjectKey builds a unique key as {stem}-{32 hex chars}.{subtype}.
// The stem is the file base name up to its first dot.
func NewObjectKey(filename string, contentType string) (string, error) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem, _, _ := strings.Cut(base, ".")
	stem = strings.TrimSpace(stem)
	if stem == "" || stem == "/" {
		stem = "image"
	}

	_, extension, found := strings.Cut(contentType, "/")
	if !found || extension == "" {
		return "", fmt.Errorf("invalid content type %q", contentType)
	}

	var suffix [16]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("couldn't generate the object key: %w", err)
	}

	return fmt.Sprintf("%s-%s.%s", stem, hex.EncodeToString(suffix[:]), extension), nil
}
