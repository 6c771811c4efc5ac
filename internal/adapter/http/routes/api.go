package routes

import (
	"insurance_xpto/internal/adapter/http/handlers"
	"insurance_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth           = "/auth"
	PathAgents         = "/agents"
	PathInsuranceTypes = "/insurance-types"
	PathOffers         = "/offers"
	PathPolicies       = "/policies"
	PathPayments       = "/payments"
	PathClaims         = "/claims"
)

// Handlers groups every HTTP handler served under /v1.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Catalog  *handlers.CatalogHandler
	Offer    *handlers.OfferHandler
	Policy   *handlers.PolicyHandler
	Claim    *handlers.ClaimHandler
	Document *handlers.DocumentHandler
}

// Gate bundles the access control applied to the API.
type Gate struct {
	Authenticator middleware.Authenticator
	Authorizer    middleware.RouteAuthorizer
	LoginLimiter  *middleware.IPRateLimiter
}

// Register mounts the public and the authenticated routes on v1.
func Register(v1 *gin.RouterGroup, h Handlers, gate Gate) {
	addPingRoutes(v1)
	addPublicAuthRoutes(v1, h.Auth, gate.LoginLimiter)

	secured := v1.Group("", middleware.RequireAuth(gate.Authenticator), middleware.Authorize(gate.Authorizer))
	addSessionRoutes(secured, h.Auth)
	addCatalogRoutes(secured, h.Catalog)
	addOfferRoutes(secured, h.Offer)
	addPolicyRoutes(secured, h.Policy, h.Claim, h.Document)
	addPaymentRoutes(secured, h.Policy, h.Document)
	addClaimRoutes(secured, h.Claim)
}
