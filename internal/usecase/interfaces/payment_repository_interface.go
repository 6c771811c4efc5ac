package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id uint) (entities.Payment, error)
	ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, notes string) (entities.Payment, error)
}
