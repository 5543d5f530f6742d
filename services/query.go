package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"agriadmin/storage"
)

// conditions accumulates AND-combined equality predicates with numbered placeholders.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) eq(column string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case *int64:
		if v == nil {
			return
		}
	case *bool:
		if v == nil {
			return
		}
	case string:
		if v == "" {
			return
		}
	}
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// rowsAffected turns a zero-row update or delete into ErrNotFound.
func rowsAffected(res sql.Result, entity string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}

// lookupID resolves a name to its id, failing with ErrInvalidInput when absent.
func lookupID(ctx context.Context, q storage.DBTX, query, field string, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, invalid("%s %q does not exist", field, name)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", field, err)
	}
	return id, nil
}
