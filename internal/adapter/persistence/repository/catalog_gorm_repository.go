package repository

import (
	"context"

	"gorm.io/gorm"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type InsuranceTypeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IInsuranceTypeRepository = (*InsuranceTypeGormRepository)(nil)

func NewInsuranceTypeGormRepository(db *gorm.DB) *InsuranceTypeGormRepository {
	return &InsuranceTypeGormRepository{db: db}
}

func (r *InsuranceTypeGormRepository) Create(ctx context.Context, t entities.InsuranceType) (entities.InsuranceType, error) {
	m := toInsuranceTypeModel(t)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.InsuranceType{}, translate(err)
	}
	return fromInsuranceTypeModel(m), nil
}

func (r *InsuranceTypeGormRepository) GetByID(ctx context.Context, id uint) (entities.InsuranceType, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *InsuranceTypeGormRepository) GetByName(ctx context.Context, name string) (entities.InsuranceType, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *InsuranceTypeGormRepository) first(ctx context.Context, query string, arg any) (entities.InsuranceType, error) {
	var m InsuranceTypeModel
	err := conn(ctx, r.db).Where(query, arg).First(&m).Error
	if notFound(err) {
		return entities.InsuranceType{}, nil
	}
	if err != nil {
		return entities.InsuranceType{}, err
	}
	return fromInsuranceTypeModel(m), nil
}

func (r *InsuranceTypeGormRepository) List(ctx context.Context) ([]entities.InsuranceType, error) {
	var rows []InsuranceTypeModel
	if err := conn(ctx, r.db).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.InsuranceType, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromInsuranceTypeModel(m))
	}
	return out, nil
}

type CoverageGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICoverageRepository = (*CoverageGormRepository)(nil)

func NewCoverageGormRepository(db *gorm.DB) *CoverageGormRepository {
	return &CoverageGormRepository{db: db}
}

func (r *CoverageGormRepository) Create(ctx context.Context, c entities.Coverage) (entities.Coverage, error) {
	m := toCoverageModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Coverage{}, translate(err)
	}
	return fromCoverageModel(m), nil
}

func (r *CoverageGormRepository) GetByID(ctx context.Context, id uint) (entities.Coverage, error) {
	var m CoverageModel
	err := conn(ctx, r.db).First(&m, id).Error
	if notFound(err) {
		return entities.Coverage{}, nil
	}
	if err != nil {
		return entities.Coverage{}, err
	}
	return fromCoverageModel(m), nil
}

func (r *CoverageGormRepository) ListByInsuranceTypeID(ctx context.Context, insuranceTypeID uint) ([]entities.Coverage, error) {
	var rows []CoverageModel
	if err := conn(ctx, r.db).Where("insurance_type_id = ?", insuranceTypeID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Coverage, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromCoverageModel(m))
	}
	return out, nil
}
