package services

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	sc "github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	now = time.Now
)

// PresignedUpload is a one-shot URL the client PUTs the image body to.
// Key is the object key to reference from a recipe or ingredient.
// ContentType is the media type the URL is signed for, without parameters;
// the upload must send exactly this Content-Type header.
type PresignedUpload struct {
	Key         string
	URL         string
	Method      string
	ContentType string
	ExpiresAt   time.Time
}

// ImageService presigns uploads against any S3-compatible object store.
type ImageService struct {
	config *sc.Config
}

func NewImageService(config *sc.Config) *ImageService {
	return &ImageService{config: config}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// NewImageKey returns a date-partitioned random object key with an
// extension for the common image types.
func NewImageKey(contentType string) string {
	d := now()
	ext := imageExtensions[contentType]
	return fmt.Sprintf("images/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// MinIO and most self-hosted stores need path-style addressing
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload returns a presigned PUT for a new image. Only image/*
// content types are accepted.
func (s *ImageService) PresignUpload(ctx context.Context, contentType string) (*PresignedUpload, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, validationError("unsupported content type %q", contentType)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := NewImageKey(mediaType)
	validity := s.config.ImageUploadURLValidity

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &mediaType,
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		Key:         key,
		URL:         req.URL,
		Method:      req.Method,
		ContentType: mediaType,
		ExpiresAt:   now().Add(validity),
	}, nil
}
