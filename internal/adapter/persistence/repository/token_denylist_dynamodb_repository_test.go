package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	putErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := in.Item["token_id"].(*types.AttributeValueMemberS).Value
	if _, exists := f.items[key]; exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := in.Key["token_id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func TestTokenDenylistDynamoRepository_RevokeAndCheck(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewTokenDenylistDynamoRepository(fake)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, repo.Revoke(ctx, "jti-1", 7, now.Add(time.Hour)))

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylistDynamoRepository_RevokeTwiceIsIdempotent(t *testing.T) {
	repo := NewTokenDenylistDynamoRepository(newFakeDynamo())
	exp := time.Now().Add(time.Hour)

	require.NoError(t, repo.Revoke(context.Background(), "jti-1", 7, exp))
	require.NoError(t, repo.Revoke(context.Background(), "jti-1", 7, exp))
}

func TestTokenDenylistDynamoRepository_ExpiredEntryIsIgnored(t *testing.T) {
	repo := NewTokenDenylistDynamoRepository(newFakeDynamo())
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Revoke(context.Background(), "jti-1", 7, now.Add(time.Minute)))
	repo.now = func() time.Time { return now.Add(2 * time.Minute) }

	revoked, err := repo.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylistDynamoRepository_PropagatesErrors(t *testing.T) {
	fake := newFakeDynamo()
	fake.putErr = errors.New("throttled")
	repo := NewTokenDenylistDynamoRepository(fake)

	err := repo.Revoke(context.Background(), "jti-1", 7, time.Now().Add(time.Hour))
	assert.EqualError(t, err, "throttled")
}
