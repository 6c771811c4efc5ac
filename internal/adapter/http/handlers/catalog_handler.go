package handlers

import (
	"log"
	"net/http"

	request "insurance_xpto/internal/adapter/http/dto/request"
	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListInsuranceTypes(c *gin.Context) {
	types, err := h.usecase.ListInsuranceTypes(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list types failed err=%v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInsuranceTypes(types))
}

func (h *CatalogHandler) CreateInsuranceType(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateInsuranceTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.CreateInsuranceType(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[catalog][handler] create type failed name=%q err=%v", payload.Name, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInsuranceType(created))
}

func (h *CatalogHandler) ListCoverages(c *gin.Context) {
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	coverages, err := h.usecase.ListCoverages(c.Request.Context(), typeID)
	if err != nil {
		log.Printf("[catalog][handler] list coverages failed insurance_type_id=%d err=%v", typeID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoverages(coverages))
}

func (h *CatalogHandler) CreateCoverage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CreateCoverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.CreateCoverage(c.Request.Context(), actor, typeID, payload.ToInput())
	if err != nil {
		log.Printf("[catalog][handler] create coverage failed insurance_type_id=%d err=%v", typeID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCoverage(created))
}
