package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insurance_xpto/internal/usecase/interfaces"
)

// TokenDenylistGormRepository keeps revoked token ids in token_blacklist.
type TokenDenylistGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.ITokenDenylist = (*TokenDenylistGormRepository)(nil)

func NewTokenDenylistGormRepository(db *gorm.DB) *TokenDenylistGormRepository {
	return &TokenDenylistGormRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *TokenDenylistGormRepository) Revoke(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error {
	m := RevokedTokenModel{
		TokenID:   tokenID,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		RevokedAt: r.now(),
	}
	return conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
}

func (r *TokenDenylistGormRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&RevokedTokenModel{}).
		Where("token_id = ? AND expires_at > ?", tokenID, r.now()).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeExpired deletes entries whose tokens can no longer be presented.
func (r *TokenDenylistGormRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res := conn(ctx, r.db).Where("expires_at <= ?", r.now()).Delete(&RevokedTokenModel{})
	return res.RowsAffected, res.Error
}
