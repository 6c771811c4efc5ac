package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type CreateInsuranceTypeInput struct {
	Name           string
	Description    string
	ValidityMonths int
}

type CreateCoverageInput struct {
	Name          string
	Description   string
	CoverageLimit float64
	BasePremium   float64
	IsOptional    bool
}

type ICatalogUseCase interface {
	ListInsuranceTypes(ctx context.Context) ([]entities.InsuranceType, error)
	CreateInsuranceType(ctx context.Context, actor entities.Actor, in CreateInsuranceTypeInput) (entities.InsuranceType, error)
	ListCoverages(ctx context.Context, insuranceTypeID uint) ([]entities.Coverage, error)
	CreateCoverage(ctx context.Context, actor entities.Actor, insuranceTypeID uint, in CreateCoverageInput) (entities.Coverage, error)
}

type CatalogUseCase struct {
	types     interfaces.IInsuranceTypeRepository
	coverages interfaces.ICoverageRepository
	now       func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(types interfaces.IInsuranceTypeRepository, coverages interfaces.ICoverageRepository) *CatalogUseCase {
	return &CatalogUseCase{types: types, coverages: coverages, now: utcNow}
}

func (u *CatalogUseCase) ListInsuranceTypes(ctx context.Context) ([]entities.InsuranceType, error) {
	types, err := u.types.List(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return types, nil
}

func (u *CatalogUseCase) CreateInsuranceType(ctx context.Context, actor entities.Actor, in CreateInsuranceTypeInput) (entities.InsuranceType, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.InsuranceType{}, ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.InsuranceType{}, fmt.Errorf("%w: name is required", ErrInvalidCatalogItem)
	}
	if in.ValidityMonths < 0 {
		return entities.InsuranceType{}, fmt.Errorf("%w: validity months must not be negative", ErrInvalidCatalogItem)
	}
	if in.ValidityMonths == 0 {
		in.ValidityMonths = entities.DefaultValidityMonths
	}

	existing, err := u.types.GetByName(ctx, name)
	if err != nil {
		return entities.InsuranceType{}, storageErr(err)
	}
	if existing.ID != 0 {
		return entities.InsuranceType{}, fmt.Errorf("%w: insurance type %q already exists", ErrInvalidCatalogItem, name)
	}

	now := u.now()
	created, err := u.types.Create(ctx, entities.InsuranceType{
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		ValidityMonths: in.ValidityMonths,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return entities.InsuranceType{}, storageErr(err)
	}
	log.Printf("[catalog][usecase] insurance type created id=%d name=%s", created.ID, created.Name)
	return created, nil
}

func (u *CatalogUseCase) ListCoverages(ctx context.Context, insuranceTypeID uint) ([]entities.Coverage, error) {
	if _, err := u.loadType(ctx, insuranceTypeID); err != nil {
		return nil, err
	}
	coverages, err := u.coverages.ListByInsuranceTypeID(ctx, insuranceTypeID)
	if err != nil {
		return nil, storageErr(err)
	}
	return coverages, nil
}

func (u *CatalogUseCase) CreateCoverage(ctx context.Context, actor entities.Actor, insuranceTypeID uint, in CreateCoverageInput) (entities.Coverage, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Coverage{}, ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return entities.Coverage{}, fmt.Errorf("%w: name is required", ErrInvalidCatalogItem)
	case in.CoverageLimit <= 0:
		return entities.Coverage{}, fmt.Errorf("%w: coverage limit must be positive", ErrInvalidCatalogItem)
	case in.BasePremium < 0:
		return entities.Coverage{}, fmt.Errorf("%w: base premium must not be negative", ErrInvalidCatalogItem)
	}
	if _, err := u.loadType(ctx, insuranceTypeID); err != nil {
		return entities.Coverage{}, err
	}

	created, err := u.coverages.Create(ctx, entities.Coverage{
		InsuranceTypeID: insuranceTypeID,
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		CoverageLimit:   in.CoverageLimit,
		BasePremium:     in.BasePremium,
		IsOptional:      in.IsOptional,
		CreatedAt:       u.now(),
	})
	if err != nil {
		return entities.Coverage{}, storageErr(err)
	}
	log.Printf("[catalog][usecase] coverage created id=%d insurance_type_id=%d", created.ID, insuranceTypeID)
	return created, nil
}

func (u *CatalogUseCase) loadType(ctx context.Context, id uint) (entities.InsuranceType, error) {
	if id == 0 {
		return entities.InsuranceType{}, ErrCatalogNotFound
	}
	t, err := u.types.GetByID(ctx, id)
	if err != nil {
		return entities.InsuranceType{}, storageErr(err)
	}
	if t.ID == 0 {
		return entities.InsuranceType{}, ErrCatalogNotFound
	}
	return t, nil
}
