package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"insurance_xpto/internal/adapter/http/handlers/mocks"
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func claimRouter(actor entities.Actor, h *ClaimHandler) *gin.Engine {
	r := newRouter(actor)
	r.POST("/v1/policies/:id/claims", h.FileClaim)
	r.GET("/v1/policies/:id/claims", h.ListClaims)
	r.GET("/v1/claims/:id", h.GetClaim)
	r.PATCH("/v1/claims/:id/status", h.ReviewClaim)
	return r
}

func TestClaimHandler_FileClaim(t *testing.T) {
	body := `{"description":"rear-ended at a light","type":"accident","claimed_amount":1200,"incident_date":"2025-03-10"}`

	t.Run("missing incident date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewClaimHandler(mocks.NewMockIClaimUseCase(ctrl))

		w := serve(claimRouter(customerActor, h), http.MethodPost, "/v1/policies/3/claims", `{"description":"x","type":"accident","claimed_amount":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("policy not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		uc.EXPECT().FileClaim(gomock.Any(), customerActor, uint(3), gomock.Any()).Return(entities.Claim{}, usecase.ErrPolicyNotActive)

		w := serve(claimRouter(customerActor, NewClaimHandler(uc)), http.MethodPost, "/v1/policies/3/claims", body)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "POLICY_NOT_ACTIVE" {
			t.Fatalf("expected 400 POLICY_NOT_ACTIVE, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("filed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		uc.EXPECT().FileClaim(gomock.Any(), customerActor, uint(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, policyID uint, in usecase.FileClaimInput) (entities.Claim, error) {
				if in.Type != entities.ClaimTypeAccident || in.ClaimedAmount != 1200 || in.IncidentDate.Day() != 10 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Claim{ID: 9, PolicyID: policyID, Status: entities.ClaimStatusPending, IncidentDate: in.IncidentDate}, nil
			},
		)

		if w := serve(claimRouter(customerActor, NewClaimHandler(uc)), http.MethodPost, "/v1/policies/3/claims", body); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestClaimHandler_ReviewClaim(t *testing.T) {
	t.Run("invalid eta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewClaimHandler(mocks.NewMockIClaimUseCase(ctrl))

		w := serve(claimRouter(agentActor, h), http.MethodPatch, "/v1/claims/9/status", `{"status":"in_review","estimated_resolution_date":"soon"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		uc.EXPECT().Review(gomock.Any(), agentActor, uint(9), gomock.Any()).Return(entities.Claim{}, entities.ErrInvalidClaimTransition)

		if w := serve(claimRouter(agentActor, NewClaimHandler(uc)), http.MethodPatch, "/v1/claims/9/status", `{"status":"closed"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		uc.EXPECT().Review(gomock.Any(), agentActor, uint(9), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, id uint, review entities.ClaimReview) (entities.Claim, error) {
				if review.Status != entities.ClaimStatusApproved || review.ApprovedAmount == nil || *review.ApprovedAmount != 800 {
					t.Fatalf("unexpected review: %+v", review)
				}
				if review.EstimatedResolutionDate == nil || !review.EstimatedResolutionDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected eta: %v", review.EstimatedResolutionDate)
				}
				return entities.Claim{ID: id, Status: review.Status, ApprovedAmount: review.ApprovedAmount}, nil
			},
		)

		body := `{"status":"approved","approved_amount":800,"estimated_resolution_date":"2025-04-01"}`
		if w := serve(claimRouter(agentActor, NewClaimHandler(uc)), http.MethodPatch, "/v1/claims/9/status", body); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClaimUseCase(ctrl)
	uc.EXPECT().ListByPolicyID(gomock.Any(), customerActor, uint(3)).Return([]entities.Claim{{ID: 9}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), customerActor, uint(10)).Return(entities.Claim{}, usecase.ErrClaimNotFound)
	r := claimRouter(customerActor, NewClaimHandler(uc))

	if w := serve(r, http.MethodGet, "/v1/policies/3/claims", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/claims/10", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
