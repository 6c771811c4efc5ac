package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService("secret", time.Hour)
	require.NoError(t, err)

	token, issued, err := svc.Issue(interfaces.TokenClaims{UserID: 5, Role: entities.RoleCustomer, CustomerID: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, issued.TokenID, parsed.TokenID)
	assert.Equal(t, uint(5), parsed.UserID)
	assert.Equal(t, entities.RoleCustomer, parsed.Role)
	assert.Equal(t, uint(7), parsed.CustomerID)
	assert.True(t, parsed.ExpiresAt.Equal(issued.ExpiresAt))
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	svc, err := NewJWTService("secret", time.Minute)
	require.NoError(t, err)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	token, _, err := svc.Issue(interfaces.TokenClaims{UserID: 1, Role: entities.RoleAdmin})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewJWTService("another-secret", time.Minute)
	require.NoError(t, err)
	other.now = func() time.Time { return base }
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestAuthorizer(t *testing.T) {
	a, err := NewAuthorizer()
	require.NoError(t, err)

	cases := []struct {
		role, path, method string
		want               bool
	}{
		{"admin", "/v1/policies/:id", "DELETE", true},
		{"agent", "/v1/offers/:id", "PUT", true},
		{"agent", "/v1/offers/:id/create-policy", "POST", false},
		{"agent", "/v1/policies/:id", "DELETE", false},
		{"customer", "/v1/offers/:id/approval", "PUT", true},
		{"customer", "/v1/offers/:id", "PUT", false},
		{"customer", "/v1/claims/:id/status", "PATCH", false},
		{"customer", "/v1/policies/:id/claims", "POST", true},
		{"customer", "/v1/agents", "POST", false},
		{"anonymous", "/v1/offers", "GET", false},
	}
	for _, tc := range cases {
		got, err := a.Allowed(tc.role, tc.path, tc.method)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "%s %s %s", tc.role, tc.method, tc.path)
	}
}

func TestParsePolicy_RejectsMalformedLine(t *testing.T) {
	_, err := parsePolicy("p, admin, /v1/*\n")
	assert.Error(t, err)
}
