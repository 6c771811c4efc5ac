package routes

import (
	"insurance_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPolicyRoutes(rg *gin.RouterGroup, policy *handlers.PolicyHandler, claim *handlers.ClaimHandler, document *handlers.DocumentHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.GET("", policy.ListPolicies)
		policies.GET("/:id", policy.GetPolicy)
		policies.DELETE("/:id", policy.DeletePolicy)
		policies.GET("/:id/payments", policy.ListPayments)

		policies.GET("/:id/document", document.DownloadPolicyDocument)
		policies.GET("/:id/documents", document.ListDocuments)
		policies.POST("/:id/documents", document.ArchivePolicyDocument)

		policies.GET("/:id/claims", claim.ListClaims)
		policies.POST("/:id/claims", claim.FileClaim)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, policy *handlers.PolicyHandler, document *handlers.DocumentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", policy.GetPayment)
		payments.PATCH("/:id/status", policy.UpdatePaymentStatus)
		payments.GET("/:id/receipt", document.DownloadPaymentReceipt)
		payments.POST("/:id/receipt", document.ArchivePaymentReceipt)
	}
}

func addClaimRoutes(rg *gin.RouterGroup, h *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.GET("/:id", h.GetClaim)
		claims.PATCH("/:id/status", h.ReviewClaim)
	}
}
