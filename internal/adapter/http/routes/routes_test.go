package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance_xpto/internal/adapter/http/handlers"
	"insurance_xpto/internal/adapter/http/handlers/mocks"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/infrastructure/security"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiMocks struct {
	auth     *mocks.MockIAuthUseCase
	offers   *mocks.MockIOfferUseCase
	issuance *mocks.MockIPolicyIssuanceUseCase
	policies *mocks.MockIPolicyUseCase
}

func newAPI(t *testing.T) (*gin.Engine, apiMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := apiMocks{
		auth:     mocks.NewMockIAuthUseCase(ctrl),
		offers:   mocks.NewMockIOfferUseCase(ctrl),
		issuance: mocks.NewMockIPolicyIssuanceUseCase(ctrl),
		policies: mocks.NewMockIPolicyUseCase(ctrl),
	}
	authz, err := security.NewAuthorizer()
	require.NoError(t, err)

	r := gin.New()
	Register(r.Group("/v1"), Handlers{
		Auth:     handlers.NewAuthHandler(m.auth),
		Catalog:  handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)),
		Offer:    handlers.NewOfferHandler(m.offers, m.issuance),
		Policy:   handlers.NewPolicyHandler(m.policies),
		Claim:    handlers.NewClaimHandler(mocks.NewMockIClaimUseCase(ctrl)),
		Document: handlers.NewDocumentHandler(mocks.NewMockIDocumentUseCase(ctrl)),
	}, Gate{Authenticator: m.auth, Authorizer: authz})
	return r, m
}

func call(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_PublicRoutes(t *testing.T) {
	r, _ := newAPI(t)

	w := call(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRegister_SecuredRoutesRequireToken(t *testing.T) {
	r, _ := newAPI(t)

	for _, path := range []string{"/v1/offers", "/v1/policies", "/v1/insurance-types"} {
		w := call(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRegister_RoleGate(t *testing.T) {
	customer := entities.Actor{UserID: 70, Role: entities.RoleCustomer, CustomerID: 7}
	agent := entities.Actor{UserID: 30, Role: entities.RoleAgent, AgentID: 3}

	t.Run("customer lists offers", func(t *testing.T) {
		r, m := newAPI(t)
		m.auth.EXPECT().Authenticate(gomock.Any(), "cust").Return(customer, nil)
		m.offers.EXPECT().List(gomock.Any(), customer, gomock.Any()).Return([]entities.Offer{}, nil)

		assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/v1/offers", "cust").Code)
	})

	t.Run("customer cannot price", func(t *testing.T) {
		r, m := newAPI(t)
		m.auth.EXPECT().Authenticate(gomock.Any(), "cust").Return(customer, nil)

		assert.Equal(t, http.StatusForbidden, call(r, http.MethodPut, "/v1/offers/12", "cust").Code)
	})

	t.Run("agent cannot issue policy", func(t *testing.T) {
		r, m := newAPI(t)
		m.auth.EXPECT().Authenticate(gomock.Any(), "agent").Return(agent, nil)

		assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/v1/offers/12/create-policy", "agent").Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		r, m := newAPI(t)
		m.auth.EXPECT().Authenticate(gomock.Any(), "old").Return(entities.Actor{}, usecase.ErrTokenRevoked)

		assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/v1/policies", "old").Code)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("TOKEN_DENYLIST_BACKEND", "Redis")
	t.Setenv("LOGIN_RATE_LIMIT_RPS", "-3")
	t.Setenv("SNOWFLAKE_NODE", "abc")
	t.Setenv("POLICY_NUMBER_PREFIX", "")

	cfg := configFromEnv()

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "redis", cfg.DenylistBackend)
	assert.Equal(t, float64(1), cfg.LoginRateLimitRPS)
	assert.Equal(t, int64(1), cfg.SnowflakeNode)
	assert.Equal(t, usecase.DefaultPolicyNumberPrefix, cfg.PolicyNumberPrefix)
}

func TestConfigFromEnv_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")

	assert.Equal(t, 24*time.Hour, configFromEnv().JWTTTL)
}
