package services

import (
	"errors"
	"fmt"

	"agriadmin/storage"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

func notFound(entity string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// classifyWrite maps constraint failures from inserts and updates.
func classifyWrite(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrInvalidReference), storage.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case storage.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// classifyDelete maps a delete blocked by a referencing row to ErrConflict.
func classifyDelete(err error) error {
	if storage.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: still referenced (%s): %w", ErrConflict, storage.ConstraintName(err), err)
	}
	return err
}
