package response

import (
	"time"

	"insurance_xpto/internal/domain/entities"
)

type ClaimResponse struct {
	ID                      uint       `json:"id"`
	PolicyID                uint       `json:"policy_id"`
	Description             string     `json:"description"`
	Status                  string     `json:"status"`
	Type                    string     `json:"type"`
	Priority                string     `json:"priority"`
	ClaimedAmount           float64    `json:"claimed_amount"`
	ApprovedAmount          *float64   `json:"approved_amount,omitempty"`
	IncidentDate            string     `json:"incident_date"`
	EstimatedResolutionDate *time.Time `json:"estimated_resolution_date,omitempty"`
	ProcessedBy             *uint      `json:"processed_by,omitempty"`
	ProcessedAt             *time.Time `json:"processed_at,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ID:                      c.ID,
		PolicyID:                c.PolicyID,
		Description:             c.Description,
		Status:                  string(c.Status),
		Type:                    string(c.Type),
		Priority:                string(c.Priority),
		ClaimedAmount:           c.ClaimedAmount,
		ApprovedAmount:          c.ApprovedAmount,
		IncidentDate:            formatDate(c.IncidentDate),
		EstimatedResolutionDate: c.EstimatedResolutionDate,
		ProcessedBy:             c.ProcessedBy,
		ProcessedAt:             c.ProcessedAt,
		Notes:                   c.Notes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}
