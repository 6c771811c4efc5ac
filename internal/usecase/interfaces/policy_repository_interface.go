package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type PolicyFilter struct {
	CustomerID uint
	Limit      int
	Offset     int
}

// IPolicyRepository persists policies.
//
// Create returns ErrDuplicateKey when either the policy number or the offer
// already has a policy.
type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id uint) (entities.Policy, error)
	GetByOfferID(ctx context.Context, offerID uint) (entities.Policy, error)
	List(ctx context.Context, filter PolicyFilter) ([]entities.Policy, error)
	// DeleteCascade removes the policy together with its claims, payments and documents.
	DeleteCascade(ctx context.Context, id uint) error
}
