package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"insurance_xpto/internal/usecase/interfaces"
)

const revokedKeyPrefix = "auth:revoked:"

// RedisTokenDenylist keeps one key per revoked token with a TTL equal to
// the token's remaining lifetime.
type RedisTokenDenylist struct {
	client redis.UniversalClient
}

var _ interfaces.ITokenDenylist = (*RedisTokenDenylist)(nil)

func NewRedisTokenDenylist(client redis.UniversalClient) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client}
}

func (s *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired tokens are rejected by signature validation.
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
