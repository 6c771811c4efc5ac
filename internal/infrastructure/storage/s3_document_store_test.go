package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (r *recordingPutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.in = in
	r.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, r.err
}

func TestS3DocumentStore_Put(t *testing.T) {
	rec := &recordingPutter{}
	store := &S3DocumentStore{client: rec, bucket: "docs", prefix: "archive/"}

	err := store.Put(context.Background(), "policies/1/policy/a.txt", "text/plain", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "docs", aws.ToString(rec.in.Bucket))
	assert.Equal(t, "archive/policies/1/policy/a.txt", aws.ToString(rec.in.Key))
	assert.Equal(t, "text/plain", aws.ToString(rec.in.ContentType))
	assert.Equal(t, "hello", string(rec.body))
}

func TestS3DocumentStore_PutError(t *testing.T) {
	store := &S3DocumentStore{client: &recordingPutter{err: errors.New("denied")}, bucket: "docs"}

	err := store.Put(context.Background(), "k", "text/plain", []byte("x"))
	assert.ErrorContains(t, err, "denied")
}

func TestNewS3DocumentStore_RequiresBucket(t *testing.T) {
	_, err := NewS3DocumentStore(aws.Config{}, S3Config{})
	assert.ErrorIs(t, err, ErrMissingBucket)
}
