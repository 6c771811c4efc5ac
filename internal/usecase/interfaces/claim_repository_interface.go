package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id uint) (entities.Claim, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (entities.Claim, error)
	ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Claim, error)
	Update(ctx context.Context, c entities.Claim) (entities.Claim, error)
}
