package interfaces

import (
	"time"

	"insurance_xpto/internal/domain/entities"
)

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	TokenID    string
	UserID     uint
	Role       entities.Role
	CustomerID uint
	AgentID    uint
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// ITokenService issues and validates signed access tokens.
type ITokenService interface {
	Issue(claims TokenClaims) (string, TokenClaims, error)
	Parse(token string) (TokenClaims, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
