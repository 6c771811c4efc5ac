package handlers

import (
	"log"
	"net/http"

	request "insurance_xpto/internal/adapter/http/dto/request"
	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// FileClaim opens a claim against a policy the caller owns.
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	policyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CreateClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	claim, err := h.usecase.FileClaim(c.Request.Context(), actor, policyID, in)
	if err != nil {
		log.Printf("[claim][handler] file failed policy_id=%d err=%v", policyID, err)
		respondError(c, err)
		return
	}
	log.Printf("[claim][handler] file success claim_id=%d policy_id=%d", claim.ID, policyID)
	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

func (h *ClaimHandler) ListClaims(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	policyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	claims, err := h.usecase.ListByPolicyID(c.Request.Context(), actor, policyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	claim, err := h.usecase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ReviewClaim moves a claim through the adjuster workflow.
func (h *ClaimHandler) ReviewClaim(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ReviewClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	review, err := payload.ToReview()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	claim, err := h.usecase.Review(c.Request.Context(), actor, id, review)
	if err != nil {
		log.Printf("[claim][handler] review failed claim_id=%d status=%s err=%v", id, payload.Status, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}
