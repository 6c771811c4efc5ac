package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"insurance_xpto/internal/usecase/interfaces"
)

var ErrMissingBucket = errors.New("missing DOCUMENTS_BUCKET")

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3DocumentStore archives rendered policy documents and receipts.
type S3DocumentStore struct {
	client objectPutter
	bucket string
	prefix string
}

var _ interfaces.IDocumentStorage = (*S3DocumentStore)(nil)

type S3Config struct {
	Bucket   string
	Endpoint string // optional, for MinIO or LocalStack
	Prefix   string
}

// NewS3DocumentStore builds the S3 client from an already loaded AWS config.
func NewS3DocumentStore(awsCfg aws.Config, cfg S3Config) (*S3DocumentStore, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3DocumentStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *S3DocumentStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	fullKey := s.prefix + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", fullKey, err)
	}
	log.Printf("[storage][s3] stored bucket=%s key=%s size=%d", s.bucket, fullKey, len(body))
	return nil
}
