package repository

import (
	"context"

	"gorm.io/gorm"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

type DocumentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDocumentRepository = (*DocumentGormRepository)(nil)

func NewDocumentGormRepository(db *gorm.DB) *DocumentGormRepository {
	return &DocumentGormRepository{db: db}
}

func (r *DocumentGormRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	m := toDocumentModel(d)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Document{}, translate(err)
	}
	return fromDocumentModel(m), nil
}

func (r *DocumentGormRepository) ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Document, error) {
	var rows []DocumentModel
	if err := conn(ctx, r.db).Where("policy_id = ?", policyID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Document, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromDocumentModel(m))
	}
	return out, nil
}
