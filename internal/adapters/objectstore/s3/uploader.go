package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type Options struct {
	Region string

	// Endpoint vacío => AWS. Con valor (MinIO, LocalStack) se usa path-style.
	Endpoint string

	// Credenciales estáticas opcionales; si faltan se usa la cadena por defecto del SDK.
	AccessKey string
	SecretKey string
}

// putObjectAPI es el subconjunto del cliente que usamos; permite fakes en tests.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

// Uploader implementa objectstore.Uploader sobre S3.
type Uploader struct {
	client putObjectAPI
}

func New(ctx context.Context, opts Options) (*Uploader, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if r := strings.TrimSpace(opts.Region); r != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(r))
	}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		if opts.AccessKey == "" || opts.SecretKey == "" {
			return nil, errors.New("s3: access key and secret key must be set together")
		}
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &Uploader{client: client}, nil
}

func (u *Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	if u == nil || u.client == nil {
		return errors.New("s3: uploader not configured")
	}

	in := &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3: put object: %w", err)
	}
	return nil
}
