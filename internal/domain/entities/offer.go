package entities

import (
	"errors"
	"fmt"
	"time"
)

// OfferStatus represents the lifecycle of an offer (quote).
//
// Requested -> Priced -> CustomerApproved -> PolicyIssued, with Rejected and
// Cancelled as terminal side exits. Payment and policy issuance commit in the
// same transaction, so there is no persisted "paid" state.
type OfferStatus string

const (
	OfferStatusRequested        OfferStatus = "requested"
	OfferStatusPriced           OfferStatus = "priced"
	OfferStatusCustomerApproved OfferStatus = "customer_approved"
	OfferStatusPolicyIssued     OfferStatus = "policy_issued"
	OfferStatusRejected         OfferStatus = "rejected"
	OfferStatusCancelled        OfferStatus = "cancelled"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusRequested, OfferStatusPriced, OfferStatusCustomerApproved,
		OfferStatusPolicyIssued, OfferStatusRejected, OfferStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s OfferStatus) Terminal() bool {
	return s == OfferStatusPolicyIssued || s == OfferStatusRejected || s == OfferStatusCancelled
}

var ErrInvalidStateTransition = errors.New("invalid state transition")

// TransitionError describes a rejected offer transition.
type TransitionError struct {
	Operation string
	From      OfferStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s offer in status %q", ErrInvalidStateTransition, e.Operation, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// AgentRef is an optional reference to an agent.
//
// The zero value means "no agent": customer-initiated offers stay unclaimed
// until an agent prices them.
type AgentRef struct {
	id uint
}

func NoAgent() AgentRef { return AgentRef{} }

func AssignedAgent(id uint) AgentRef { return AgentRef{id: id} }

func (r AgentRef) IsAssigned() bool { return r.id != 0 }

// ID returns the agent id and whether one is assigned.
func (r AgentRef) ID() (uint, bool) { return r.id, r.id != 0 }

// Ptr is the nullable column representation.
func (r AgentRef) Ptr() *uint {
	if r.id == 0 {
		return nil
	}
	id := r.id
	return &id
}

func AgentRefFromPtr(id *uint) AgentRef {
	if id == nil {
		return NoAgent()
	}
	return AssignedAgent(*id)
}

type SelectedCoverage struct {
	ID         uint
	OfferID    uint
	CoverageID uint
	Premium    float64
	Notes      string
}

// Offer is one quote for a customer and insurance type.
type Offer struct {
	ID                      uint
	CustomerID              uint
	Agent                   AgentRef
	InsuranceTypeID         uint
	BasePrice               float64
	DiscountRate            float64
	FinalPrice              float64
	Status                  OfferStatus
	ValidUntil              *time.Time
	IsCustomerApproved      bool
	CustomerApprovedAt      *time.Time
	ReviewedAt              *time.Time
	ReviewedBy              AgentRef
	CustomerAdditionalInfo  string
	RequestedCoverageAmount float64
	RequestedStartDate      time.Time
	Department              string
	AdminNotes              string
	RejectionReason         string
	CreatedBy               uint
	CreatedAt               time.Time
	UpdatedAt               time.Time

	SelectedCoverages []SelectedCoverage
}

// PricingTerms are the agent supplied price fields, frozen at pricing time.
type PricingTerms struct {
	BasePrice    float64
	DiscountRate float64
	FinalPrice   float64
	ValidUntil   time.Time
	AdminNotes   string
}

func (o *Offer) guard(op string, allowed ...OfferStatus) error {
	for _, s := range allowed {
		if o.Status == s {
			return nil
		}
	}
	return &TransitionError{Operation: op, From: o.Status}
}

// CanPrice reports whether the offer still accepts pricing terms.
func (o *Offer) CanPrice() error {
	return o.guard("price", OfferStatusRequested)
}

// Price moves a requested offer to priced and claims it for the reviewer when
// no agent is assigned yet.
func (o *Offer) Price(terms PricingTerms, reviewer AgentRef, now time.Time) error {
	if err := o.CanPrice(); err != nil {
		return err
	}
	validUntil := terms.ValidUntil
	o.BasePrice = terms.BasePrice
	o.DiscountRate = terms.DiscountRate
	o.FinalPrice = terms.FinalPrice
	o.ValidUntil = &validUntil
	if terms.AdminNotes != "" {
		o.AdminNotes = terms.AdminNotes
	}
	o.ReviewedAt = &now
	o.ReviewedBy = reviewer
	if !o.Agent.IsAssigned() {
		o.Agent = reviewer
	}
	o.Status = OfferStatusPriced
	o.UpdatedAt = now
	return nil
}

// Approve records the customer's acceptance of a priced offer.
func (o *Offer) Approve(now time.Time) error {
	if err := o.guard("approve", OfferStatusPriced); err != nil {
		return err
	}
	o.IsCustomerApproved = true
	o.CustomerApprovedAt = &now
	o.Status = OfferStatusCustomerApproved
	o.UpdatedAt = now
	return nil
}

// Decline records the customer's refusal of a priced offer.
func (o *Offer) Decline(reason string, now time.Time) error {
	if err := o.guard("decline", OfferStatusPriced); err != nil {
		return err
	}
	o.IsCustomerApproved = false
	o.RejectionReason = reason
	o.Status = OfferStatusRejected
	o.UpdatedAt = now
	return nil
}

// Reject is the staff side rejection.
func (o *Offer) Reject(reason string, now time.Time) error {
	if err := o.guard("reject", OfferStatusRequested, OfferStatusPriced); err != nil {
		return err
	}
	o.RejectionReason = reason
	o.Status = OfferStatusRejected
	o.UpdatedAt = now
	return nil
}

func (o *Offer) Cancel(reason string, now time.Time) error {
	if err := o.guard("cancel", OfferStatusRequested, OfferStatusPriced); err != nil {
		return err
	}
	if reason != "" {
		o.RejectionReason = reason
	}
	o.Status = OfferStatusCancelled
	o.UpdatedAt = now
	return nil
}

// Issue marks the offer as converted into a policy.
func (o *Offer) Issue(now time.Time) error {
	if err := o.guard("issue", OfferStatusCustomerApproved); err != nil {
		return err
	}
	o.Status = OfferStatusPolicyIssued
	o.UpdatedAt = now
	return nil
}

// CanIssue reports whether the offer is ready for payment and issuance.
func (o Offer) CanIssue() error {
	return o.guard("issue", OfferStatusCustomerApproved)
}
