package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"insurance_xpto/internal/adapter/http/middleware"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Path id must be a positive integer", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errNoActor        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
)

// codedErrors gives the most specific usecase errors their own code. Order
// matters: the first errors.Is match wins.
var codedErrors = []struct {
	err  error
	code string
}{
	{usecase.ErrInvalidOfferID, "INVALID_OFFER_ID"},
	{usecase.ErrInvalidCustomerID, "INVALID_CUSTOMER_ID"},
	{usecase.ErrInvalidInsuranceTypeID, "INVALID_INSURANCE_TYPE_ID"},
	{usecase.ErrCustomerNotFound, "CUSTOMER_NOT_FOUND"},
	{usecase.ErrInsuranceTypeNotFound, "INSURANCE_TYPE_NOT_FOUND"},
	{usecase.ErrInsuranceTypeInactive, "INSURANCE_TYPE_INACTIVE"},
	{usecase.ErrCoverageNotFound, "COVERAGE_NOT_FOUND"},
	{usecase.ErrInvalidCoverageAmount, "INVALID_COVERAGE_AMOUNT"},
	{usecase.ErrInvalidStartDate, "INVALID_START_DATE"},
	{usecase.ErrInvalidPricing, "INVALID_PRICING"},
	{usecase.ErrInvalidPaymentAmount, "INVALID_PAYMENT_AMOUNT"},
	{usecase.ErrInvalidPaymentMethod, "INVALID_PAYMENT_METHOD"},
	{usecase.ErrInvalidCardLast4, "INVALID_CARD_LAST4"},
	{usecase.ErrInvalidPaymentStatus, "INVALID_PAYMENT_STATUS"},
	{usecase.ErrPolicyNotActive, "POLICY_NOT_ACTIVE"},
	{usecase.ErrInvalidClaim, "INVALID_CLAIM"},
	{usecase.ErrInvalidCatalogItem, "INVALID_CATALOG_ITEM"},
	{usecase.ErrInvalidCredentialsInput, "INVALID_CREDENTIALS_INPUT"},
	{usecase.ErrWeakPassword, "WEAK_PASSWORD"},
	{usecase.ErrInvalidProfile, "INVALID_PROFILE"},
	{usecase.ErrOfferNotFound, "OFFER_NOT_FOUND"},
	{usecase.ErrPolicyNotFound, "POLICY_NOT_FOUND"},
	{usecase.ErrPaymentNotFound, "PAYMENT_NOT_FOUND"},
	{usecase.ErrClaimNotFound, "CLAIM_NOT_FOUND"},
	{usecase.ErrCatalogNotFound, "INSURANCE_TYPE_NOT_FOUND"},
	{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{usecase.ErrAccountDisabled, "ACCOUNT_DISABLED"},
	{usecase.ErrTokenRevoked, "TOKEN_REVOKED"},
	{usecase.ErrInvalidToken, "INVALID_TOKEN"},
}

func errorCode(err error, fallback string) string {
	for _, c := range codedErrors {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return fallback
}

// mapUseCaseError translates usecase errors into the HTTP envelope.
func mapUseCaseError(err error) *pkg.AppError {
	msg := err.Error()
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple(errorCode(err, "VALIDATION_ERROR"), msg, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", msg, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple(errorCode(err, "NOT_FOUND"), msg, http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyIssued):
		return pkg.NewDomainErrorSimple("POLICY_ALREADY_ISSUED", "A policy was already issued for this offer", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple(errorCode(err, "UNAUTHORIZED"), "Invalid credentials or token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to access this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Card payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDocumentStorageNotConfigured):
		return pkg.NewDomainErrorSimple("DOCUMENT_STORAGE_UNAVAILABLE", "Document archive is not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPolicyNumberGenerationFailed):
		return pkg.NewDomainError("POLICY_NUMBER_GENERATION_FAILED", "Could not allocate a policy number", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor returns the authenticated actor or writes a 401.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondAppError(c, errNoActor)
	}
	return actor, ok
}

// pathID parses a positive integer path parameter or writes a 400.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		log.Printf("[http][handler] invalid path id name=%s value=%q", name, raw)
		respondAppError(c, errInvalidID)
		return 0, false
	}
	return uint(id), true
}

// paging reads limit/offset query parameters. Missing values are zero.
func paging(c *gin.Context) (limit, offset int, ok bool) {
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &limit}, {"offset", &offset}} {
		raw := strings.TrimSpace(c.Query(p.name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			respondAppError(c, errInvalidQuery)
			return 0, 0, false
		}
		*p.dst = v
	}
	return limit, offset, true
}

// queryID reads an optional positive integer query parameter.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		respondAppError(c, errInvalidQuery)
		return 0, false
	}
	return uint(v), true
}
