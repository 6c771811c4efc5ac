package interfaces

import (
	"context"
	"time"
)

// ITokenDenylist holds revoked access token ids until they expire.
type ITokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
