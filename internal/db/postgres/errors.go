package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique-constraint
// violation.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint
// violation, optionally on a specific constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != uniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
