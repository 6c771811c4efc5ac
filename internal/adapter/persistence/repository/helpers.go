package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"insurance_xpto/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// translate maps driver errors onto the port level sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", interfaces.ErrDuplicateKey, err)
	}
	return err
}

// notFound reports whether err means "no row", which repositories turn into
// a zero entity with a nil error.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func paginate(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
