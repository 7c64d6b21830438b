package common

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config contains minimal configuration for creating an S3 client.
// Values are optional and fall back to the standard AWS config chain.
type S3Config struct {
	// Region to use for requests, e.g. "us-east-1".
	Region string
	// Profile selects a named shared config/credentials profile.
	Profile string
	// UsePathStyle forces path-style addressing (S3-compatible providers).
	UsePathStyle bool
}

// S3 wraps the AWS SDK v2 S3 client behind the narrow surface the article
// archive needs.
type S3 struct {
	client *s3.Client
}

// NewS3 creates an S3 wrapper using the default AWS configuration chain,
// with optional overrides from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3{client: c}, nil
}

// Put uploads an object to bucket/key. contentType and cacheControl are set
// on the object when non-empty.
func (s *S3) Put(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if cacheControl != "" {
		in.CacheControl = aws.String(cacheControl)
	}

	_, err := s.client.PutObject(ctx, in)
	return err
}
