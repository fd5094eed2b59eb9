package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "contacts/internal/errors"
)

const (
	mysqlDuplicateEntry = 1062
	pgUniqueViolation   = "23505"
)

// translate is the single place where storage faults are reclassified.
// Domain sentinels pass through untouched.
func translate(err error, op string) error {
	switch {
	case errors.Is(err, apperrors.ErrContactNotFound):
		return err
	case isUniqueViolation(err):
		return apperrors.ErrEmailConflict
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// isUniqueViolation reports whether err comes from a unique index rejecting
// a write, for every driver the service can run on.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// SQLite reports constraint failures only through the message text.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
