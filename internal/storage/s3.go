package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Uploader stores uploads in an S3 bucket and returns the public object
// URL. Used when the merchant deploys with object storage instead of a
// local static directory.
type S3Uploader struct {
	client *s3.S3
	bucket string
	region string
}

// S3Config carries the credentials and bucket for an S3Uploader.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Uploader creates an uploader backed by the configured bucket.
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Uploader{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Save uploads the file as a public-read object under a unique key.
func (u *S3Uploader) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	body, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	key := "uploads/" + uniqueName(file.Filename)
	_, err = u.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(file.Header.Get("Content-Type")),
		ContentLength: aws.Int64(int64(len(body))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
