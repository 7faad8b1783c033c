package qr

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader mirrors QR artifacts to external storage.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

type S3Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Uploader(region, accessKey, secretKey, bucket string) *S3Uploader {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: "qr/",
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, data []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(u.prefix + key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}
