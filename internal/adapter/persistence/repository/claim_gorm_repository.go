package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type ClaimGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClaimRepository = (*ClaimGormRepository)(nil)

func NewClaimGormRepository(db *gorm.DB) *ClaimGormRepository {
	return &ClaimGormRepository{db: db}
}

func (r *ClaimGormRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	m := toClaimModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Claim{}, translate(err)
	}
	return fromClaimModel(m), nil
}

func (r *ClaimGormRepository) GetByID(ctx context.Context, id uint) (entities.Claim, error) {
	var m ClaimModel
	err := conn(ctx, r.db).First(&m, id).Error
	if notFound(err) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	return fromClaimModel(m), nil
}

func (r *ClaimGormRepository) GetByIDForUpdate(ctx context.Context, id uint) (entities.Claim, error) {
	var m ClaimModel
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	if notFound(err) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	return fromClaimModel(m), nil
}

func (r *ClaimGormRepository) ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Claim, error) {
	var rows []ClaimModel
	if err := conn(ctx, r.db).Where("policy_id = ?", policyID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Claim, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromClaimModel(m))
	}
	return out, nil
}

func (r *ClaimGormRepository) Update(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	m := toClaimModel(c)
	res := conn(ctx, r.db).Model(&m).Select("*").Omit("id", "created_at", "policy_id", "created_by").Updates(&m)
	if res.Error != nil {
		return entities.Claim{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Claim{}, nil
	}
	return c, nil
}
