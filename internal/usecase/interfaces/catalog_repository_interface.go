package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type IInsuranceTypeRepository interface {
	Create(ctx context.Context, t entities.InsuranceType) (entities.InsuranceType, error)
	GetByID(ctx context.Context, id uint) (entities.InsuranceType, error)
	GetByName(ctx context.Context, name string) (entities.InsuranceType, error)
	List(ctx context.Context) ([]entities.InsuranceType, error)
}

type ICoverageRepository interface {
	Create(ctx context.Context, c entities.Coverage) (entities.Coverage, error)
	GetByID(ctx context.Context, id uint) (entities.Coverage, error)
	ListByInsuranceTypeID(ctx context.Context, insuranceTypeID uint) ([]entities.Coverage, error)
}
