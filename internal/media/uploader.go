package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/matlynx/matlynx-api/internal/config"
)

// Uploader puts processed images into the media bucket and hands back the
// public URL the client embeds in profile_photo / image_url.
type Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: strings.TrimSuffix(cfg.S3BaseURL, "/"),
	}
}

func (u *Uploader) Upload(ctx context.Context, key string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.PublicURL(key), nil
}

func (u *Uploader) PublicURL(key string) string {
	if u.baseURL != "" {
		return u.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
