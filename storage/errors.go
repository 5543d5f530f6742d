package storage

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes the services react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pqError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	pqErr, ok := pqError(err)
	return ok && pqErr.Code == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err carries SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	pqErr, ok := pqError(err)
	return ok && pqErr.Code == codeForeignKeyViolation
}

// IsKeyCollision reports whether err is a uniqueness violation on table's primary key.
func IsKeyCollision(err error, table string) bool {
	pqErr, ok := pqError(err)
	return ok && pqErr.Code == codeUniqueViolation && pqErr.Constraint == table+"_pkey"
}

// ConstraintName returns the violated constraint, if any.
func ConstraintName(err error) string {
	if pqErr, ok := pqError(err); ok {
		return pqErr.Constraint
	}
	return ""
}
