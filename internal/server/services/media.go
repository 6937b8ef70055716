package services

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"pokedex/internal/logging"
	sc "pokedex/internal/server/config"
)

// Seams for testing the AWS SDK calls.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// MediaService resolves catalog image references. With an S3 endpoint
// configured, relative references are rewritten into presigned GET URLs for
// the configured bucket; otherwise references pass through untouched.
type MediaService struct {
	config *sc.Config
	logger logging.Logger
}

func NewMediaService(config *sc.Config, l logging.Logger) *MediaService {
	return &MediaService{config: config, logger: l.With("module", "media_service")}
}

// Enabled reports whether presigning is configured.
func (s *MediaService) Enabled() bool {
	return s.config.S3BaseEndpoint != ""
}

// ResolveImageURL returns the URL the presentation layer should embed for
// the given image reference. Absolute URLs and disabled presigning pass the
// reference through. A presign failure degrades to the raw reference with a
// warning; it never fails the request.
func (s *MediaService) ResolveImageURL(ctx context.Context, imageRef string) string {
	if !s.Enabled() || imageRef == "" || strings.Contains(imageRef, "://") {
		return imageRef
	}

	url, err := s.presignedGetURL(ctx, strings.TrimPrefix(imageRef, "/"))
	if err != nil {
		s.logger.Warn(ctx, "presigning image failed, using raw reference", "ref", imageRef, "error", err.Error())
		return imageRef
	}
	return url
}

func (s *MediaService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *MediaService) presignedGetURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
