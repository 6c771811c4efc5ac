package response

import (
	"time"

	"insurance_xpto/internal/domain/entities"
)

type SelectedCoverageResponse struct {
	ID         uint    `json:"id"`
	CoverageID uint    `json:"coverage_id"`
	Premium    float64 `json:"premium"`
	Notes      string  `json:"notes,omitempty"`
}

type OfferResponse struct {
	ID                      uint                       `json:"id"`
	CustomerID              uint                       `json:"customer_id"`
	AgentID                 *uint                      `json:"agent_id"`
	InsuranceTypeID         uint                       `json:"insurance_type_id"`
	Status                  string                     `json:"status"`
	BasePrice               float64                    `json:"base_price"`
	DiscountRate            float64                    `json:"discount_rate"`
	FinalPrice              float64                    `json:"final_price"`
	ValidUntil              *time.Time                 `json:"valid_until,omitempty"`
	IsCustomerApproved      bool                       `json:"is_customer_approved"`
	CustomerApprovedAt      *time.Time                 `json:"customer_approved_at,omitempty"`
	ReviewedAt              *time.Time                 `json:"reviewed_at,omitempty"`
	ReviewedBy              *uint                      `json:"reviewed_by,omitempty"`
	RequestedCoverageAmount float64                    `json:"requested_coverage_amount"`
	RequestedStartDate      string                     `json:"requested_start_date"`
	AdditionalInfo          string                     `json:"additional_info,omitempty"`
	Department              string                     `json:"department,omitempty"`
	AdminNotes              string                     `json:"admin_notes,omitempty"`
	RejectionReason         string                     `json:"rejection_reason,omitempty"`
	Coverages               []SelectedCoverageResponse `json:"coverages"`
	CreatedAt               time.Time                  `json:"created_at"`
	UpdatedAt               time.Time                  `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func FromOffer(o entities.Offer) OfferResponse {
	coverages := make([]SelectedCoverageResponse, 0, len(o.SelectedCoverages))
	for _, c := range o.SelectedCoverages {
		coverages = append(coverages, SelectedCoverageResponse{ID: c.ID, CoverageID: c.CoverageID, Premium: c.Premium, Notes: c.Notes})
	}
	return OfferResponse{
		ID:                      o.ID,
		CustomerID:              o.CustomerID,
		AgentID:                 o.Agent.Ptr(),
		InsuranceTypeID:         o.InsuranceTypeID,
		Status:                  string(o.Status),
		BasePrice:               o.BasePrice,
		DiscountRate:            o.DiscountRate,
		FinalPrice:              o.FinalPrice,
		ValidUntil:              o.ValidUntil,
		IsCustomerApproved:      o.IsCustomerApproved,
		CustomerApprovedAt:      o.CustomerApprovedAt,
		ReviewedAt:              o.ReviewedAt,
		ReviewedBy:              o.ReviewedBy.Ptr(),
		RequestedCoverageAmount: o.RequestedCoverageAmount,
		RequestedStartDate:      formatDate(o.RequestedStartDate),
		AdditionalInfo:          o.CustomerAdditionalInfo,
		Department:              o.Department,
		AdminNotes:              o.AdminNotes,
		RejectionReason:         o.RejectionReason,
		Coverages:               coverages,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func FromOffers(offers []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
