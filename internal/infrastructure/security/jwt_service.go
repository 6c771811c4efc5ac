package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

const defaultIssuer = "insurance-xpto"

var (
	ErrMissingSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken  = errors.New("invalid token")
)

type accessClaims struct {
	Role       string `json:"role"`
	CustomerID uint   `json:"customer_id,omitempty"`
	AgentID    uint   `json:"agent_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 access tokens whose jti feeds the denylist.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: defaultIssuer,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *JWTService) Issue(c interfaces.TokenClaims) (string, interfaces.TokenClaims, error) {
	now := s.now().Truncate(time.Second)
	c.TokenID = uuid.NewString()
	c.IssuedAt = now
	c.ExpiresAt = now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Role:       string(c.Role),
		CustomerID: c.CustomerID,
		AgentID:    c.AgentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        c.TokenID,
			Subject:   strconv.FormatUint(uint64(c.UserID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", interfaces.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, c, nil
}

func (s *JWTService) Parse(raw string) (interfaces.TokenClaims, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 || claims.ID == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	role := entities.Role(claims.Role)
	if !role.Valid() {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	out := interfaces.TokenClaims{
		TokenID:    claims.ID,
		UserID:     uint(userID),
		Role:       role,
		CustomerID: claims.CustomerID,
		AgentID:    claims.AgentID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
