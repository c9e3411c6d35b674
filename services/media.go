package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaResolver turns a stored media reference (a thumbnail or screenshot key)
// into a URL a browser can load. Empty references resolve to "".
type MediaResolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// LocalMedia serves media from a static base URL, e.g. "/media"
type LocalMedia struct {
	BaseURL string
}

func (m LocalMedia) URL(_ context.Context, key string) (string, error) {
	if key == "" || isAbsoluteURL(key) {
		return key, nil
	}
	base := strings.TrimRight(m.BaseURL, "/")
	return base + "/" + strings.TrimLeft(key, "/"), nil
}

// S3Media hands out presigned GET URLs for objects in a private bucket
type S3Media struct {
	presigner *s3.PresignClient
	bucket    string
	expires   time.Duration
}

// NewS3Media builds a resolver from the default AWS credential chain
func NewS3Media(ctx context.Context, bucket, region string, expires time.Duration) (*S3Media, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewS3MediaFromConfig(cfg, bucket, expires), nil
}

func NewS3MediaFromConfig(cfg aws.Config, bucket string, expires time.Duration) *S3Media {
	return &S3Media{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
		expires:   expires,
	}
}

func (m *S3Media) URL(ctx context.Context, key string) (string, error) {
	if key == "" || isAbsoluteURL(key) {
		return key, nil
	}
	req, err := m.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(strings.TrimLeft(key, "/")),
	}, s3.WithPresignExpires(m.expires))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}
	return req.URL, nil
}

func isAbsoluteURL(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}
