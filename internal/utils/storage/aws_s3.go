package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type (
	AwsS3Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
		// Endpoint is set for S3 compatible stores (minio, localstack).
		Endpoint string
	}

	// ObjectAPI is the subset of the S3 client the document store needs.
	ObjectAPI interface {
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	}

	awsS3Document struct {
		client ObjectAPI
		bucket string
		key    string
	}
)

func NewAwsS3Client(ctx context.Context, cfg AwsS3Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewAwsS3Document(client ObjectAPI, bucket, key string) Document {
	return &awsS3Document{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

func (d *awsS3Document) Read(ctx context.Context) ([]byte, error) {
	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(d.key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", d.bucket, d.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", d.bucket, d.key, err)
	}
	return data, nil
}

func (d *awsS3Document) Write(ctx context.Context, data []byte) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(d.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", d.bucket, d.key, err)
	}
	return nil
}

func (d *awsS3Document) Location() string {
	return fmt.Sprintf("s3://%s/%s", d.bucket, d.key)
}
