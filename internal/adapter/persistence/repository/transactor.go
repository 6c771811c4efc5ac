package repository

import (
	"context"

	"gorm.io/gorm"

	"insurance_xpto/internal/usecase/interfaces"
)

type txKey struct{}

// GormTransactor carries the open *gorm.DB transaction inside the context so
// repositories called from fn join it.
type GormTransactor struct {
	db *gorm.DB
}

var _ interfaces.ITransactor = (*GormTransactor)(nil)

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		// gorm turns a nested Transaction into SAVEPOINT / ROLLBACK TO.
		return tx.WithContext(ctx).Transaction(func(sp *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, sp))
		})
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the pool when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
