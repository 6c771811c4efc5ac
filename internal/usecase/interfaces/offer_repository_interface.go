package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type OfferFilter struct {
	CustomerID uint
	AgentID    uint
	Status     entities.OfferStatus
	Limit      int
	Offset     int
}

// IOfferRepository abstracts persistence for Offer and its selected coverages.
//
// Lookups return a zero Offer (ID == 0) and a nil error when nothing matches.
type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id uint) (entities.Offer, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (entities.Offer, error)
	Update(ctx context.Context, o entities.Offer) (entities.Offer, error)
	List(ctx context.Context, filter OfferFilter) ([]entities.Offer, error)
}
