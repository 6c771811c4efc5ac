package handlers

import (
	"log"
	"net/http"

	request "insurance_xpto/internal/adapter/http/dto/request"
	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// PolicyHandler serves policy reads, admin deletion and payment records.
type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

func (h *PolicyHandler) ListPolicies(c *gin.Context) {
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

	policies, err := h.usecase.List(c.Request.Context(), actor, interfaces.PolicyFilter{CustomerID: customerID, Limit: limit, Offset: offset})
	if err != nil {
		log.Printf("[policy][handler] list failed user_id=%d err=%v", actor.UserID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	policy, err := h.usecase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

// DeletePolicy removes a policy with its dependents. Admin only.
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, id); err != nil {
		log.Printf("[policy][handler] delete failed policy_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[policy][handler] delete success policy_id=%d user_id=%d", id, actor.UserID)
	c.Status(http.StatusNoContent)
}

func (h *PolicyHandler) ListPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payments, err := h.usecase.ListPayments(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PolicyHandler) GetPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payment, err := h.usecase.GetPayment(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// UpdatePaymentStatus is the manual reconciliation hook for staff.
func (h *PolicyHandler) UpdatePaymentStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	payment, err := h.usecase.UpdatePaymentStatus(c.Request.Context(), actor, id, entities.PaymentStatus(payload.Status), payload.Notes)
	if err != nil {
		log.Printf("[payment][handler] status update failed payment_id=%d status=%s err=%v", id, payload.Status, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}
