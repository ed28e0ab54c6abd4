package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// Client provides file storage backed by S3 presigned URLs.
// Uploads go directly from the mobile app to the bucket; the backend only
// hands out short-lived URLs and keeps the object key as the storage ref.
type Client struct {
	s3Client     *s3.Client
	bucket       string
	region       string
	uploadExpiry time.Duration
}

// UploadTicket is a presigned upload slot returned to the caller
type UploadTicket struct {
	UploadURL  string `json:"upload_url"`
	StorageRef string `json:"storage_ref"`
	ExpiresIn  int    `json:"expires_in"` // seconds
}

// NewClient creates a storage client from AWS configuration
func NewClient(ctx context.Context, cfg models.AWSConfig) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		s3Client:     s3.NewFromConfig(awsCfg),
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		uploadExpiry: time.Duration(cfg.UploadExpiryMin) * time.Minute,
	}, nil
}

// GenerateUploadURL returns a presigned PUT URL for the given object key
func (c *Client) GenerateUploadURL(ctx context.Context, key, contentType string) (*UploadTicket, error) {
	presignClient := s3.NewPresignClient(c.s3Client)
	request, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = c.uploadExpiry
	})
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadTicket{
		UploadURL:  request.URL,
		StorageRef: key,
		ExpiresIn:  int(c.uploadExpiry.Seconds()),
	}, nil
}

// GetURL returns a presigned GET URL for a stored object, or empty for an
// empty storage ref.
func (c *Client) GetURL(ctx context.Context, storageRef string) (string, error) {
	if storageRef == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(c.s3Client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(storageRef),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = c.uploadExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return request.URL, nil
}
