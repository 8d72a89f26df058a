package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

//go:generate mockgen -source=s3.go -destination=../mocks/storage_mocks.go -package=mocks

// ErrObjectNotFound is returned when the requested object does not exist
var ErrObjectNotFound = errors.New("object not found")

// ImageStore removes uploaded images by their public id
type ImageStore interface {
	Delete(ctx context.Context, publicID string) error
}

// S3Config holds connection settings for an S3 compatible bucket
type S3Config struct {
	Endpoint    string
	Region      string
	Bucket      string
	AccessKey   string
	SecretKey   string
	SSLDisabled bool
}

// S3ImageStore keeps images in an S3 compatible bucket keyed by public id
type S3ImageStore struct {
	client s3iface.S3API
	bucket string
}

// NewS3ImageStore creates an image store backed by the configured bucket
func NewS3ImageStore(cfg S3Config) (*S3ImageStore, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.SSLDisabled),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	return NewS3ImageStoreWithClient(s3.New(sess), cfg.Bucket), nil
}

// NewS3ImageStoreWithClient wraps an existing S3 client
func NewS3ImageStoreWithClient(client s3iface.S3API, bucket string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket}
}

// Delete removes the object stored under publicID
func (s *S3ImageStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		if isNotFound(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("head object failed: %w, bucket %s, key %s", err, s.bucket, publicID)
	}

	if _, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	}); err != nil {
		return fmt.Errorf("delete object failed: %w, bucket %s, key %s", err, s.bucket, publicID)
	}
	return nil
}

func isNotFound(err error) bool {
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return true
	}
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return false
}
