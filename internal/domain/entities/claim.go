package entities

import (
	"errors"
	"fmt"
	"time"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusInReview ClaimStatus = "in_review"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
	ClaimStatusResolved ClaimStatus = "resolved"
	ClaimStatusClosed   ClaimStatus = "closed"
)

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusPending:  {ClaimStatusInReview, ClaimStatusRejected},
	ClaimStatusInReview: {ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusApproved: {ClaimStatusResolved},
	ClaimStatusResolved: {ClaimStatusClosed},
	ClaimStatusRejected: {ClaimStatusClosed},
}

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusInReview, ClaimStatusApproved,
		ClaimStatusRejected, ClaimStatusResolved, ClaimStatusClosed:
		return true
	}
	return false
}

func (s ClaimStatus) CanMoveTo(next ClaimStatus) bool {
	for _, allowed := range claimTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ClaimType string

const (
	ClaimTypeAccident ClaimType = "accident"
	ClaimTypeTheft    ClaimType = "theft"
	ClaimTypeDamage   ClaimType = "damage"
	ClaimTypeHealth   ClaimType = "health"
	ClaimTypeOther    ClaimType = "other"
)

func (t ClaimType) Valid() bool {
	switch t {
	case ClaimTypeAccident, ClaimTypeTheft, ClaimTypeDamage, ClaimTypeHealth, ClaimTypeOther:
		return true
	}
	return false
}

type ClaimPriority string

const (
	ClaimPriorityLow    ClaimPriority = "low"
	ClaimPriorityMedium ClaimPriority = "medium"
	ClaimPriorityHigh   ClaimPriority = "high"
)

func (p ClaimPriority) Valid() bool {
	return p == ClaimPriorityLow || p == ClaimPriorityMedium || p == ClaimPriorityHigh
}

var ErrInvalidClaimTransition = fmt.Errorf("%w: claim", ErrInvalidStateTransition)

// Claim is an incident reported against a policy.
type Claim struct {
	ID                      uint
	PolicyID                uint
	CreatedBy               uint
	ProcessedBy             *uint
	Description             string
	Status                  ClaimStatus
	Type                    ClaimType
	Priority                ClaimPriority
	ClaimedAmount           float64
	ApprovedAmount          *float64
	IncidentDate            time.Time
	EstimatedResolutionDate *time.Time
	ProcessedAt             *time.Time
	Notes                   string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ClaimReview is a staff decision applied to a claim.
type ClaimReview struct {
	Status                  ClaimStatus
	ApprovedAmount          *float64
	EstimatedResolutionDate *time.Time
	Notes                   string
}

var ErrApprovedAmountRequired = errors.New("approved amount required")

// ApplyReview moves the claim to review.Status, stamping processor data.
func (c *Claim) ApplyReview(review ClaimReview, processor uint, now time.Time) error {
	if !c.Status.CanMoveTo(review.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidClaimTransition, c.Status, review.Status)
	}
	if review.Status == ClaimStatusApproved {
		if review.ApprovedAmount == nil {
			return ErrApprovedAmountRequired
		}
		c.ApprovedAmount = review.ApprovedAmount
	}
	if review.EstimatedResolutionDate != nil {
		c.EstimatedResolutionDate = review.EstimatedResolutionDate
	}
	if review.Notes != "" {
		c.Notes = review.Notes
	}
	c.Status = review.Status
	c.ProcessedBy = &processor
	c.ProcessedAt = &now
	c.UpdatedAt = now
	return nil
}
