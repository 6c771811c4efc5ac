package request

import (
	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
)

type SelectedCoverageRequest struct {
	CoverageID uint   `json:"coverage_id" binding:"required"`
	Notes      string `json:"notes"`
}

// CreateOfferRequest is the quote request. Customers may omit customer_id.
type CreateOfferRequest struct {
	CustomerID              uint                      `json:"customer_id"`
	InsuranceTypeID         uint                      `json:"insurance_type_id" binding:"required"`
	RequestedCoverageAmount float64                   `json:"requested_coverage_amount" binding:"required"`
	RequestedStartDate      string                    `json:"requested_start_date" binding:"required" example:"2025-01-01"`
	AdditionalInfo          string                    `json:"additional_info"`
	Department              string                    `json:"department"`
	Coverages               []SelectedCoverageRequest `json:"coverages" binding:"dive"`
}

func (r CreateOfferRequest) ToInput() (usecase.RequestOfferInput, error) {
	start, err := ParseDate(r.RequestedStartDate)
	if err != nil {
		return usecase.RequestOfferInput{}, err
	}
	coverages := make([]usecase.SelectedCoverageInput, 0, len(r.Coverages))
	for _, c := range r.Coverages {
		coverages = append(coverages, usecase.SelectedCoverageInput{CoverageID: c.CoverageID, Notes: c.Notes})
	}
	return usecase.RequestOfferInput{
		CustomerID:              r.CustomerID,
		InsuranceTypeID:         r.InsuranceTypeID,
		RequestedCoverageAmount: r.RequestedCoverageAmount,
		RequestedStartDate:      start,
		AdditionalInfo:          r.AdditionalInfo,
		Department:              r.Department,
		Coverages:               coverages,
	}, nil
}

// PriceOfferRequest carries the agent pricing. final_price is optional and
// computed from base_price and discount_rate when omitted.
type PriceOfferRequest struct {
	BasePrice    float64 `json:"base_price" binding:"required"`
	DiscountRate float64 `json:"discount_rate"`
	FinalPrice   float64 `json:"final_price"`
	ValidUntil   string  `json:"valid_until" binding:"required" example:"2025-02-01"`
	AdminNotes   string  `json:"admin_notes"`
}

func (r PriceOfferRequest) ToInput() (usecase.PriceOfferInput, error) {
	validUntil, err := ParseDate(r.ValidUntil)
	if err != nil {
		return usecase.PriceOfferInput{}, err
	}
	return usecase.PriceOfferInput{
		BasePrice:    r.BasePrice,
		DiscountRate: r.DiscountRate,
		FinalPrice:   r.FinalPrice,
		ValidUntil:   validUntil,
		AdminNotes:   r.AdminNotes,
	}, nil
}

type OfferApprovalRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"`
}

type OfferReasonRequest struct {
	Reason string `json:"reason"`
}

type CreatePolicyRequest struct {
	PaymentAmount float64 `json:"payment_amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required" example:"CreditCard"`
	TransactionID string  `json:"transaction_id"`
	CardLast4     string  `json:"card_last4" example:"4242"`
	CardToken     string  `json:"card_token"`
	PayerEmail    string  `json:"payer_email"`
}

func (r CreatePolicyRequest) ToInput() usecase.PayAndIssueInput {
	return usecase.PayAndIssueInput{
		PaymentAmount: r.PaymentAmount,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		TransactionID: r.TransactionID,
		CardLast4:     r.CardLast4,
		CardToken:     r.CardToken,
		PayerEmail:    r.PayerEmail,
	}
}
