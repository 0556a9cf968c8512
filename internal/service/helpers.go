package service

import (
	"errors"

	"gorm.io/gorm"

	apperrors "textilerp/internal/errors"
)

// notFound translates GORM's record-not-found into the domain error so
// handlers never see storage internals.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
