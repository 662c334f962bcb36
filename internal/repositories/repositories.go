package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey is returned when an insert violates a unique
// constraint, e.g. re-using an email address.
var ErrDuplicateKey = errors.New("duplicate key")

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// translateError maps driver-level errors onto repository sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

// squash collapses a multi-line SQL literal for single-line logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
