package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CreditCard"
	PaymentMethodDebitCard    PaymentMethod = "DebitCard"
	PaymentMethodBankTransfer PaymentMethod = "BankTransfer"
	PaymentMethodCash         PaymentMethod = "Cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBankTransfer, PaymentMethodCash:
		return true
	}
	return false
}

// IsCard reports whether the method is charged through the card gateway.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// Payment is a single payment attempt against a policy.
//
// ProviderPayloadRaw keeps the gateway response (JSON) for traceability.
type Payment struct {
	ID                 uint
	PolicyID           uint
	Amount             float64
	PaidAt             time.Time
	Method             PaymentMethod
	Status             PaymentStatus
	TransactionID      string
	CardLast4          string
	ProviderReference  string
	ProviderPayloadRaw json.RawMessage
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
