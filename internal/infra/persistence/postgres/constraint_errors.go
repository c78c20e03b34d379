package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports a duplicate key, whether or not GORM translated it.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// mapWriteError turns a unique violation into duplicated and wraps everything else.
func mapWriteError(err error, duplicated error, message string) error {
	if isUniqueConstraintViolation(err) {
		return errors.WithStack(duplicated)
	}

	return errors.Wrap(err, message)
}
