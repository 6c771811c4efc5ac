package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"insurance_xpto/internal/usecase/interfaces"
)

const defaultTokenDenylistTableName = "token_denylist"

type revokedTokenItem struct {
	TokenID   string `dynamodbav:"token_id"`
	UserID    string `dynamodbav:"user_id"`
	RevokedAt string `dynamodbav:"revoked_at"`
	// ExpiresAt is epoch seconds so the table TTL setting can reap it.
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// DynamoAPI is the subset of the DynamoDB client the denylist needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// TokenDenylistDynamoRepository stores revoked token ids in DynamoDB.
//
// Table requirements:
//   - PK: token_id (string)
//   - TTL attribute: expires_at
//
// TTL deletion is lazy, so IsRevoked also compares expires_at with the clock.
type TokenDenylistDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ITokenDenylist = (*TokenDenylistDynamoRepository)(nil)

func NewTokenDenylistDynamoRepository(ddb DynamoAPI) *TokenDenylistDynamoRepository {
	return &TokenDenylistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOKEN_DENYLIST_TABLE", defaultTokenDenylistTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *TokenDenylistDynamoRepository) Revoke(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error {
	av, err := attributevalue.MarshalMap(revokedTokenItem{
		TokenID:   tokenID,
		UserID:    strconv.FormatUint(uint64(userID), 10),
		RevokedAt: r.now().Format(time.RFC3339Nano),
		ExpiresAt: expiresAt.UTC().Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token_id)"),
		ExpressionAttributeNames: map[string]string{
			"#token_id": "token_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *TokenDenylistDynamoRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token_id": &types.AttributeValueMemberS{Value: tokenID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it revokedTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.ExpiresAt > r.now().Unix(), nil
}
