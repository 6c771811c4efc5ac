package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	request "insurance_xpto/internal/adapter/http/dto/request"
	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// OfferHandler serves the quote lifecycle and the pay-and-issue step.
type OfferHandler struct {
	usecase  usecase.IOfferUseCase
	issuance usecase.IPolicyIssuanceUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase, issuance usecase.IPolicyIssuanceUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc, issuance: issuance}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	log.Printf("[offer][handler] create start user_id=%d insurance_type_id=%d", actor.UserID, in.InsuranceTypeID)
	offer, err := h.usecase.RequestOffer(c.Request.Context(), actor, in)
	if err != nil {
		log.Printf("[offer][handler] create failed user_id=%d err=%v", actor.UserID, err)
		respondError(c, err)
		return
	}
	log.Printf("[offer][handler] create success offer_id=%d", offer.ID)
	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// ListOffers supports status, customer_id, agent_id, limit and offset query
// parameters. Customers only ever see their own offers.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := paging(c)
	if !ok {
		return
	}
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}
	agentID, ok := queryID(c, "agent_id")
	if !ok {
		return
	}
	status := entities.OfferStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		respondAppError(c, errInvalidQuery)
		return
	}

	offers, err := h.usecase.List(c.Request.Context(), actor, interfaces.OfferFilter{
		CustomerID: customerID,
		AgentID:    agentID,
		Status:     status,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.Printf("[offer][handler] list failed user_id=%d err=%v", actor.UserID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	offer, err := h.usecase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// PriceOffer sets the agent pricing and moves the offer to priced.
func (h *OfferHandler) PriceOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.PriceOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	offer, err := h.usecase.PriceOffer(c.Request.Context(), actor, id, in)
	if err != nil {
		log.Printf("[offer][handler] price failed offer_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[offer][handler] price success offer_id=%d final_price=%.2f", offer.ID, offer.FinalPrice)
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// ApproveOffer records the customer's decision on a priced offer.
func (h *OfferHandler) ApproveOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.OfferApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	offer, err := h.usecase.ApproveOffer(c.Request.Context(), actor, id, *payload.Approved, payload.Reason)
	if err != nil {
		log.Printf("[offer][handler] approval failed offer_id=%d approved=%t err=%v", id, *payload.Approved, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) RejectOffer(c *gin.Context) {
	h.closeOffer(c, "reject", h.usecase.RejectOffer)
}

func (h *OfferHandler) CancelOffer(c *gin.Context) {
	h.closeOffer(c, "cancel", h.usecase.CancelOffer)
}

func (h *OfferHandler) closeOffer(
	c *gin.Context,
	action string,
	closer func(ctx context.Context, actor entities.Actor, offerID uint, reason string) (entities.Offer, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.OfferReasonRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondAppError(c, errInvalidPayload)
			return
		}
	}

	offer, err := closer(c.Request.Context(), actor, id, payload.Reason)
	if err != nil {
		log.Printf("[offer][handler] %s failed offer_id=%d err=%v", action, id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// CreatePolicy pays for an approved offer and issues its policy.
func (h *OfferHandler) CreatePolicy(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CreatePolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	log.Printf("[policy][handler] issue start offer_id=%d method=%s", id, payload.PaymentMethod)
	res, err := h.issuance.PayAndIssuePolicy(c.Request.Context(), actor, id, payload.ToInput())
	if err != nil {
		log.Printf("[policy][handler] issue failed offer_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[policy][handler] issue success offer_id=%d policy_number=%s", id, res.Policy.PolicyNumber)
	c.JSON(http.StatusOK, response.FromIssuance(res.Policy, res.Payment, res.Offer))
}
