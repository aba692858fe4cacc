package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"learnhub/internal/errors"
)

// uniqueViolationCode is the SQLSTATE of unique_violation.
const uniqueViolationCode = "23505"

// Unique index names declared on the models.
const (
	uniqUsersPhone    = "uniq_users_phone"
	uniqUsersIDNumber = "uniq_users_id_number"
)

// uniqueConstraintName returns the violated unique index, or ok=false when err is
// not a unique violation. The name is empty when only GORM's translated error is available.
func uniqueConstraintName(err error) (name string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolationCode {
			return "", false
		}

		return pgErr.ConstraintName, true
	}

	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
