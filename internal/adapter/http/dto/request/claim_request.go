package request

import (
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
)

type CreateClaimRequest struct {
	Description   string  `json:"description" binding:"required"`
	Type          string  `json:"type" binding:"required" example:"accident"`
	Priority      string  `json:"priority" example:"medium"`
	ClaimedAmount float64 `json:"claimed_amount" binding:"required"`
	IncidentDate  string  `json:"incident_date" binding:"required" example:"2025-03-10"`
	Notes         string  `json:"notes"`
}

func (r CreateClaimRequest) ToInput() (usecase.FileClaimInput, error) {
	incident, err := ParseDate(r.IncidentDate)
	if err != nil {
		return usecase.FileClaimInput{}, err
	}
	return usecase.FileClaimInput{
		Description:   r.Description,
		Type:          entities.ClaimType(r.Type),
		Priority:      entities.ClaimPriority(r.Priority),
		ClaimedAmount: r.ClaimedAmount,
		IncidentDate:  incident,
		Notes:         r.Notes,
	}, nil
}

type ReviewClaimRequest struct {
	Status                  string   `json:"status" binding:"required" example:"in_review"`
	ApprovedAmount          *float64 `json:"approved_amount"`
	EstimatedResolutionDate string   `json:"estimated_resolution_date"`
	Notes                   string   `json:"notes"`
}

func (r ReviewClaimRequest) ToReview() (entities.ClaimReview, error) {
	review := entities.ClaimReview{
		Status:         entities.ClaimStatus(r.Status),
		ApprovedAmount: r.ApprovedAmount,
		Notes:          r.Notes,
	}
	eta, err := ParseDate(r.EstimatedResolutionDate)
	if err != nil {
		return entities.ClaimReview{}, err
	}
	if !eta.IsZero() {
		review.EstimatedResolutionDate = &eta
	}
	return review, nil
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"failed"`
	Notes  string `json:"notes"`
}
