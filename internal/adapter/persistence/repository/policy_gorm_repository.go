package repository

import (
	"context"

	"gorm.io/gorm"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type PolicyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPolicyRepository = (*PolicyGormRepository)(nil)

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

// Create relies on ux_policies_offer_id and ux_policies_policy_number; a
// violation of either surfaces as interfaces.ErrDuplicateKey.
func (r *PolicyGormRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	m := toPolicyModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Policy{}, translate(err)
	}
	return fromPolicyModel(m), nil
}

func (r *PolicyGormRepository) GetByID(ctx context.Context, id uint) (entities.Policy, error) {
	var m PolicyModel
	err := conn(ctx, r.db).First(&m, id).Error
	if notFound(err) {
		return entities.Policy{}, nil
	}
	if err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyModel(m), nil
}

func (r *PolicyGormRepository) GetByOfferID(ctx context.Context, offerID uint) (entities.Policy, error) {
	var m PolicyModel
	err := conn(ctx, r.db).Where("offer_id = ?", offerID).First(&m).Error
	if notFound(err) {
		return entities.Policy{}, nil
	}
	if err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyModel(m), nil
}

func (r *PolicyGormRepository) List(ctx context.Context, filter interfaces.PolicyFilter) ([]entities.Policy, error) {
	q := conn(ctx, r.db).Model(&PolicyModel{})
	if filter.CustomerID != 0 {
		q = q.Joins("JOIN offers ON offers.id = policies.offer_id").
			Where("offers.customer_id = ?", filter.CustomerID)
	}
	var rows []PolicyModel
	if err := paginate(q.Order("policies.id DESC"), filter.Limit, filter.Offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Policy, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPolicyModel(m))
	}
	return out, nil
}

// DeleteCascade removes dependents first so no claim, payment or document is
// ever left pointing at a missing policy.
func (r *PolicyGormRepository) DeleteCascade(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("policy_id = ?", id).Delete(&ClaimModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("policy_id = ?", id).Delete(&DocumentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("policy_id = ?", id).Delete(&PaymentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&PolicyModel{}, id).Error
	})
}
