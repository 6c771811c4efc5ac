package routes

import (
	"insurance_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addOfferRoutes(rg *gin.RouterGroup, h *handlers.OfferHandler) {
	offers := rg.Group(PathOffers)
	{
		offers.POST("", h.CreateOffer)
		offers.GET("", h.ListOffers)
		offers.GET("/:id", h.GetOffer)
		offers.PUT("/:id", h.PriceOffer)
		offers.PUT("/:id/approval", h.ApproveOffer)
		offers.PATCH("/:id/reject", h.RejectOffer)
		offers.PATCH("/:id/cancel", h.CancelOffer)
		offers.POST("/:id/create-policy", h.CreatePolicy)
	}
}
