// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client used by [s3FileStorage].
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3FileStorage uploads files into an S3-compatible bucket (AWS, MinIO, R2).
type s3FileStorage struct {
	client    objectPutter
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewS3FileStorage constructs a [FileStorage] backed by the configured
// bucket. Static credentials are used when an access key is set, otherwise
// the default AWS credential chain applies.
func NewS3FileStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO and most self-hosted stores need path-style addressing
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 file storage")
	return &s3FileStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: objectBaseURL(cfg),
		logger:    logger,
	}, nil
}

// Save uploads r as object name and returns its public URL.
func (s *s3FileStorage) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Save").Str("key", name).Msg("error uploading object")
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}

	return s.publicURL + "/" + url.PathEscape(name), nil
}

// objectBaseURL is PublicURL if set, "<endpoint>/<bucket>" for custom
// endpoints, and the virtual-hosted AWS URL otherwise.
func objectBaseURL(cfg config.S3) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}
