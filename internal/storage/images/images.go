package images

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client uploads book images to an S3-compatible bucket (R2, MinIO, S3)
// and serves them from a public base URL.
type Client struct {
	s3c     *s3.Client
	bucket  string
	baseURL string
}

// New initializes the client from AWS_* env configuration.
func New(ctx context.Context) (*Client, error) {
	endpoint := os.Getenv("AWS_ENDPOINT")
	region := os.Getenv("AWS_REGION")
	bucket := os.Getenv("AWS_BUCKET")

	creds := credentials.NewStaticCredentialsProvider(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = false
	})

	baseURL := strings.TrimRight(os.Getenv("IMAGE_PUBLIC_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}

	return &Client{
		s3c:     client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores data under key and returns the stable public URL.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := c.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("images: put object %s: %w", key, err)
	}
	return c.baseURL + "/" + key, nil
}

// Delete removes the object stored under key. The key is the one recorded at
// upload time, never re-derived from the URL.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3c.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("images: delete object %s: %w", key, err)
	}
	return nil
}
