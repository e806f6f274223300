package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ATClus/psa-api-sub000/internal/database"
)

// Common repository errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
)

// updateOutcome maps the result of an UPDATE statement onto the
// repository errors. Zero affected rows means the row vanished between
// the caller's read and this write, so the losing update fails with
// ErrNotFound instead of silently succeeding.
func updateOutcome(res *gorm.DB) error {
	if res.Error != nil {
		if database.IsDuplicateKeyError(res.Error) {
			return ErrDuplicateKey
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
