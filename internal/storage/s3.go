package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/likelion-hsu/recipememo/backend/config"
)

// objectKeyPrefix mirrors URLPrefix inside the bucket.
const objectKeyPrefix = "uploads/"

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presignFunc func(ctx context.Context, objectKey string, expiration time.Duration) (string, error)

// S3ImageStore keeps images in an S3 bucket under the uploads/ prefix.
type S3ImageStore struct {
	client  objectAPI
	bucket  string
	presign presignFunc
}

// Ensure S3ImageStore implements ImageStore
var _ ImageStore = (*S3ImageStore)(nil)

// NewS3ImageStore creates a store backed by the configured bucket.
func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		client:  cfg.Client,
		bucket:  cfg.BucketName,
		presign: cfg.GeneratePresignedURL,
	}
}

// Store uploads the content of r and returns /uploads/<generated name>.
func (s *S3ImageStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	name := GenerateName(filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKeyPrefix + name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("[ImageStore] Uploaded image s3://%s/%s%s", s.bucket, objectKeyPrefix, name)
	return URLPrefix + name, nil
}

// Delete removes the object behind url.
func (s *S3ImageStore) Delete(ctx context.Context, url string) error {
	name, err := NameFromURL(url)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKeyPrefix + name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

// PresignedURL returns a time limited download URL for a stored name.
func (s *S3ImageStore) PresignedURL(ctx context.Context, name string, expiration time.Duration) (string, error) {
	if !validName(name) {
		return "", ErrInvalidImageURL
	}
	return s.presign(ctx, objectKeyPrefix+name, expiration)
}
