package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Error taxonomy surfaced to callers. Storage errors propagate unchanged
// beyond classification; nothing here retries.
var (
	// ErrDuplicateKey reports a unique-constraint violation, e.g. creating
	// a user with a username that already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound reports that a referenced identifier does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation reports an invalid enumeration value or a
	// foreign key pointing at a nonexistent row.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable reports that the database could not be opened
	// or written at all.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// classify maps GORM and driver errors onto the taxonomy. Unknown errors
// pass through untouched.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraintViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrConstraintViolation
	case strings.Contains(err.Error(), "CHECK constraint failed"):
		// The sqlite driver does not translate CHECK failures.
		return ErrConstraintViolation
	default:
		return err
	}
}
