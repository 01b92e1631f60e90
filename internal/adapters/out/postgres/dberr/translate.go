// Package dberr converts storage errors into the error kinds the service exposes.
// Repositories never return raw driver errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Translate maps err onto NotFound, Conflict or Unavailable. Errors that already
// carry a service kind pass through unchanged.
//
// Example:
//
//	if err := db.First(&dto, id).Error; err != nil {
//	    return nil, dberr.Translate(err, "locker", id)
//	}
func Translate(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errs.KindOf(err) != errs.KindInternal:
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, id)
	case IsUniqueViolation(err):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s already exists", entity), err)
	default:
		return errs.NewUnavailableError("storage", err)
	}
}

// IsUniqueViolation recognizes duplicate keys across the supported drivers.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	// sqlite reports constraint failures as plain text when error translation is off
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
