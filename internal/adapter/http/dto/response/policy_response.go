package response

import (
	"encoding/json"
	"time"

	"insurance_xpto/internal/domain/entities"
)

type PolicyResponse struct {
	ID           uint      `json:"id"`
	OfferID      uint      `json:"offer_id"`
	PolicyNumber string    `json:"policy_number"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		ID:           p.ID,
		OfferID:      p.OfferID,
		PolicyNumber: p.PolicyNumber,
		StartDate:    formatDate(p.StartDate),
		EndDate:      formatDate(p.EndDate),
		CreatedAt:    p.CreatedAt,
	}
}

func FromPolicies(policies []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}

type PaymentResponse struct {
	ID                uint            `json:"id"`
	PolicyID          uint            `json:"policy_id"`
	Amount            float64         `json:"amount"`
	PaidAt            time.Time       `json:"paid_at"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	TransactionID     string          `json:"transaction_id,omitempty"`
	CardLast4         string          `json:"card_last4,omitempty"`
	ProviderReference string          `json:"provider_reference,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty" swaggertype:"object"`
	Notes             string          `json:"notes,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		PolicyID:          p.PolicyID,
		Amount:            p.Amount,
		PaidAt:            p.PaidAt,
		Method:            string(p.Method),
		Status:            string(p.Status),
		TransactionID:     p.TransactionID,
		CardLast4:         p.CardLast4,
		ProviderReference: p.ProviderReference,
		Notes:             p.Notes,
	}
	if len(p.ProviderPayloadRaw) > 0 && json.Valid(p.ProviderPayloadRaw) {
		resp.ProviderPayload = p.ProviderPayloadRaw
	}
	return resp
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// IssuanceResponse is returned by the pay-and-issue route.
type IssuanceResponse struct {
	Policy  PolicyResponse  `json:"policy"`
	Payment PaymentResponse `json:"payment"`
	Offer   OfferResponse   `json:"offer"`
}

func FromIssuance(policy entities.Policy, payment entities.Payment, offer entities.Offer) IssuanceResponse {
	return IssuanceResponse{Policy: FromPolicy(policy), Payment: FromPayment(payment), Offer: FromOffer(offer)}
}
