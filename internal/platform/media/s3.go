// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures an [S3Store].
type S3Options struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint (R2, MinIO). Empty means AWS.
	Endpoint     string
	UsePathStyle bool
	// PublicBaseURL prefixes object keys in returned URLs. When empty the
	// virtual-hosted AWS URL is used.
	PublicBaseURL string
}

// s3API is the subset of [*s3.Client] the store needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps assets in an S3-compatible bucket.
type S3Store struct {
	client  s3API
	options S3Options
}

// NewS3Store loads AWS credentials from the default chain
// (env, shared config, instance role) and builds the client.
func NewS3Store(ctx context.Context, options S3Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(options.Region))
	if err != nil {
		return nil, fmt.Errorf("media: failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(clientOptions *s3.Options) {
		if options.Endpoint != "" {
			clientOptions.BaseEndpoint = aws.String(options.Endpoint)
		}
		clientOptions.UsePathStyle = options.UsePathStyle
	})

	return &S3Store{client: client, options: options}, nil
}

// Upload streams file to the bucket under a fresh key.
func (store *S3Store) Upload(ctx context.Context, file File, kind Kind) (*Object, error) {
	if !Accepts(kind, file.Name) {
		return nil, ErrUnsupportedType
	}

	source, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("media: failed to open %s: %w", file.Path, err)
	}
	defer source.Close()

	key := MakeKey(kind, file.Name)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(store.options.Bucket),
		Key:         aws.String(key),
		Body:        source,
		ContentType: aws.String(ContentType(file.Name)),
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := store.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("media: s3 upload of %s failed: %w", key, err)
	}

	return &Object{Key: key, URL: store.publicURL(key)}, nil
}

// Delete removes the object. S3 treats missing keys as success.
func (store *S3Store) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("media: invalid key %q", key)
	}

	_, err := store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.options.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media: s3 delete of %s failed: %w", key, err)
	}
	return nil
}

func (store *S3Store) publicURL(key string) string {
	if store.options.PublicBaseURL != "" {
		return strings.TrimRight(store.options.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", store.options.Bucket, store.options.Region, key)
}
