package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	sc "github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageService() *ImageService {
	return NewImageService(&sc.Config{
		S3Region:               "us-east-1",
		S3AccessKey:            "minioadmin",
		S3SecretKey:            "minioadmin",
		S3BaseEndpoint:         "http://127.0.0.1:9000",
		S3Bucket:               "recipe-images",
		ImageUploadURLValidity: 15 * time.Minute,
	})
}

// stubS3 replaces the AWS seams for the duration of the test.
func stubS3(t *testing.T, presign func(in *s3.PutObjectInput, opts s3.PresignOptions) (*v4.PresignedHTTPRequest, error)) {
	t.Helper()
	origLoad, origNewS3, origNewPre, origPut, origNow := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject, now
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject, now = origLoad, origNewS3, origNewPre, origPut, origNow
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		require.NotNil(t, o.BaseEndpoint)
		assert.Equal(t, "http://127.0.0.1:9000", *o.BaseEndpoint)
		assert.True(t, o.UsePathStyle)
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var o s3.PresignOptions
		for _, fn := range optFns {
			fn(&o)
		}
		return presign(in, o)
	}
	now = func() time.Time { return time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC) }
}

func TestImageService_PresignUpload(t *testing.T) {
	stubS3(t, func(in *s3.PutObjectInput, o s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "recipe-images", *in.Bucket)
		assert.Equal(t, "image/png", *in.ContentType)
		assert.Equal(t, 15*time.Minute, o.Expires)
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/recipe-images/" + *in.Key, Method: "PUT"}, nil
	})

	up, err := newImageService().PresignUpload(context.Background(), "image/png; charset=binary")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^images/2025/07/04/[0-9a-f-]{36}\.png$`), up.Key)
	assert.Equal(t, "PUT", up.Method)
	assert.Equal(t, "image/png", up.ContentType)
	assert.Contains(t, up.URL, up.Key)
	assert.Equal(t, time.Date(2025, 7, 4, 10, 15, 0, 0, time.UTC), up.ExpiresAt)
}

func TestImageService_PresignUploadRejectsNonImages(t *testing.T) {
	s := newImageService()
	for _, ct := range []string{"", "text/plain", "application/pdf", "image"} {
		_, err := s.PresignUpload(context.Background(), ct)
		assert.ErrorIs(t, err, common.ErrorValidation, ct)
	}
}

func TestImageService_PresignErrors(t *testing.T) {
	stubS3(t, func(*s3.PutObjectInput, s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	})

	_, err := newImageService().PresignUpload(context.Background(), "image/jpeg")
	assert.EqualError(t, err, "sign-fail")

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = newImageService().PresignUpload(context.Background(), "image/jpeg")
	assert.EqualError(t, err, "load-fail")
}

func TestNewImageKey(t *testing.T) {
	assert.Regexp(t, `^images/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}\.jpg$`, NewImageKey("image/jpeg"))
	assert.Regexp(t, `^images/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}$`, NewImageKey("image/x-unknown"))
	assert.NotEqual(t, NewImageKey("image/png"), NewImageKey("image/png"))
}
