package routes

import (
	"insurance_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	types := rg.Group(PathInsuranceTypes)
	{
		types.GET("", h.ListInsuranceTypes)
		types.POST("", h.CreateInsuranceType)
		types.GET("/:id/coverages", h.ListCoverages)
		types.POST("/:id/coverages", h.CreateCoverage)
	}
}
