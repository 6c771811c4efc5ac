package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

// OfferGormRepository persists offers and their selected coverages.
type OfferGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOfferRepository = (*OfferGormRepository)(nil)

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func (r *OfferGormRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	m := toOfferModel(o)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Offer{}, translate(err)
	}
	return fromOfferModel(m), nil
}

func (r *OfferGormRepository) GetByID(ctx context.Context, id uint) (entities.Offer, error) {
	var m OfferModel
	err := conn(ctx, r.db).Preload("SelectedCoverages").First(&m, id).Error
	if notFound(err) {
		return entities.Offer{}, nil
	}
	if err != nil {
		return entities.Offer{}, err
	}
	return fromOfferModel(m), nil
}

func (r *OfferGormRepository) GetByIDForUpdate(ctx context.Context, id uint) (entities.Offer, error) {
	db := conn(ctx, r.db)
	var m OfferModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	if notFound(err) {
		return entities.Offer{}, nil
	}
	if err != nil {
		return entities.Offer{}, err
	}
	if err := db.Where("offer_id = ?", m.ID).Order("id").Find(&m.SelectedCoverages).Error; err != nil {
		return entities.Offer{}, err
	}
	return fromOfferModel(m), nil
}

// Update rewrites the offer columns. Selected coverages are immutable after
// the request and are left untouched.
func (r *OfferGormRepository) Update(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	m := toOfferModel(o)
	coverages := m.SelectedCoverages
	m.SelectedCoverages = nil

	res := conn(ctx, r.db).Model(&m).Select("*").Omit("id", "created_at").Updates(&m)
	if res.Error != nil {
		return entities.Offer{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Offer{}, nil
	}
	m.SelectedCoverages = coverages
	return fromOfferModel(m), nil
}

func (r *OfferGormRepository) List(ctx context.Context, filter interfaces.OfferFilter) ([]entities.Offer, error) {
	q := conn(ctx, r.db).Model(&OfferModel{}).Preload("SelectedCoverages")
	if filter.CustomerID != 0 {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.AgentID != 0 {
		q = q.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var rows []OfferModel
	if err := paginate(q.Order("id DESC"), filter.Limit, filter.Offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Offer, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromOfferModel(m))
	}
	return out, nil
}
