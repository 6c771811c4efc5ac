package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Payment{}, translate(err)
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id uint) (entities.Payment, error) {
	var m PaymentModel
	err := conn(ctx, r.db).First(&m, id).Error
	if notFound(err) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentGormRepository) ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Payment, error) {
	var rows []PaymentModel
	if err := conn(ctx, r.db).Where("policy_id = ?", policyID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPaymentModel(m))
	}
	return out, nil
}

// UpdateStatus touches status, notes and updated_at only.
func (r *PaymentGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, notes string) (entities.Payment, error) {
	db := conn(ctx, r.db)
	res := db.Model(&PaymentModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"notes":      notes,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, id)
}
