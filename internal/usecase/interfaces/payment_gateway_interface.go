package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is what the issuance flow asks the payment provider to collect.
type ChargeRequest struct {
	Amount            float64
	Method            string
	Description       string
	ExternalReference string
	PayerEmail        string
	CardToken         string
}

// ChargeResult is the provider outcome. Approved is false when the provider
// answered but declined the charge.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Approved          bool
	ProviderResponse  json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	// Refund returns a captured charge in full.
	Refund(ctx context.Context, providerPaymentID string) error
}
