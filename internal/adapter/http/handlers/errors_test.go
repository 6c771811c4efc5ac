package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insurance_xpto/internal/adapter/http/middleware"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	customerActor = entities.Actor{UserID: 70, Role: entities.RoleCustomer, CustomerID: 7}
	agentActor    = entities.Actor{UserID: 30, Role: entities.RoleAgent, AgentID: 3}
	adminActor    = entities.Actor{UserID: 1, Role: entities.RoleAdmin}
)

// newRouter returns a test engine whose requests run as actor.
func newRouter(actor entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithActor(actor))
	return r
}

func newJSONRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func record(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return record(r, newJSONRequest(method, path, body))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestMapUseCaseError(t *testing.T) {
	var transition error = &entities.TransitionError{Operation: "approve", From: entities.OfferStatusRequested}

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidPricing, http.StatusBadRequest, "INVALID_PRICING"},
		{fmt.Errorf("wrapped: %w", usecase.ErrInvalidPaymentAmount), http.StatusBadRequest, "INVALID_PAYMENT_AMOUNT"},
		{usecase.ErrInsuranceTypeInactive, http.StatusBadRequest, "INSURANCE_TYPE_INACTIVE"},
		{usecase.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{transition, http.StatusConflict, "INVALID_STATE_TRANSITION"},
		{usecase.ErrOfferNotFound, http.StatusNotFound, "OFFER_NOT_FOUND"},
		{usecase.ErrCatalogNotFound, http.StatusNotFound, "INSURANCE_TYPE_NOT_FOUND"},
		{usecase.ErrAlreadyIssued, http.StatusConflict, "POLICY_ALREADY_ISSUED"},
		{usecase.ErrEmailAlreadyRegistered, http.StatusConflict, "EMAIL_ALREADY_REGISTERED"},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{usecase.ErrTokenRevoked, http.StatusUnauthorized, "TOKEN_REVOKED"},
		{usecase.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{usecase.ErrPaymentDeclined, http.StatusPaymentRequired, "PAYMENT_DECLINED"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_GATEWAY_UNAVAILABLE"},
		{usecase.ErrDocumentStorageNotConfigured, http.StatusServiceUnavailable, "DOCUMENT_STORAGE_UNAVAILABLE"},
		{usecase.ErrPolicyNumberGenerationFailed, http.StatusInternalServerError, "POLICY_NUMBER_GENERATION_FAILED"},
		{fmt.Errorf("%w: %w", usecase.ErrStorage, errors.New("conn reset")), http.StatusInternalServerError, "STORAGE_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("%v: expected %d %s, got %d %s", tc.err, tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapUseCaseError_HidesStorageDetails(t *testing.T) {
	appErr := mapUseCaseError(fmt.Errorf("%w: %w", usecase.ErrStorage, errors.New("password=hunter2")))
	if strings.Contains(appErr.ToHTTPError().Message, "hunter2") {
		t.Fatalf("storage cause leaked into response: %q", appErr.Message)
	}
}

func TestPathID(t *testing.T) {
	r := newRouter(customerActor)
	r.GET("/v1/offers/:id", func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		if w := serve(r, http.MethodGet, "/v1/offers/"+raw, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", raw, w.Code)
		}
	}
	if w := serve(r, http.MethodGet, "/v1/offers/12", ""); w.Code != http.StatusOK || w.Body.String() != `{"id":12}` {
		t.Fatalf("expected 200 {\"id\":12}, got %d %s", w.Code, w.Body.String())
	}
}

func TestRequireActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/policies", func(c *gin.Context) {
		if _, ok := requireActor(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})
	if w := serve(r, http.MethodGet, "/v1/policies", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
