package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Association is an optional one-to-one side table keyed by the owner's id,
// e.g. farms_soil_types(farm_id, soil_type_id).
type Association struct {
	Table       string
	KeyColumn   string
	ValueColumn string
}

var (
	FarmSoilType    = Association{Table: "farms_soil_types", KeyColumn: "farm_id", ValueColumn: "soil_type_id"}
	FarmIrrigation  = Association{Table: "farm_irrigation", KeyColumn: "farm_id", ValueColumn: "irrigation_id"}
	FarmWaterSource = Association{Table: "farm_water_src", KeyColumn: "farm_id", ValueColumn: "water_src_id"}
)

// Upsert leaves exactly one row for key holding value.
func (a Association) Upsert(ctx context.Context, q DBTX, key, value any) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s",
		a.Table, a.KeyColumn, a.ValueColumn, a.KeyColumn, a.ValueColumn, a.ValueColumn)
	if _, err := q.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", a.Table, err)
	}
	return nil
}

// Dependent pairs an association with a requested value. A nil Value means the
// caller omitted it and the existing row must stay as it is.
type Dependent struct {
	Association
	Value *int64
}

// PrimaryWrite writes the owning row and returns its key.
type PrimaryWrite func(ctx context.Context, tx *sql.Tx) (any, error)

// Writer applies a primary row and its dependents atomically.
type Writer struct {
	db *sql.DB
}

func NewWriter(db *sql.DB) *Writer {
	return &Writer{db: db}
}

// Write runs primary then upserts every provided dependent in one transaction.
func (w *Writer) Write(ctx context.Context, primary PrimaryWrite, deps ...Dependent) error {
	return WithTx(ctx, w.db, func(tx *sql.Tx) error {
		key, err := primary(ctx, tx)
		if err != nil {
			return err
		}
		return UpsertDependents(ctx, tx, key, deps)
	})
}

// UpsertDependents upserts each dependent whose Value is set.
func UpsertDependents(ctx context.Context, q DBTX, key any, deps []Dependent) error {
	for _, d := range deps {
		if d.Value == nil {
			continue
		}
		if err := d.Upsert(ctx, q, key, *d.Value); err != nil {
			return err
		}
	}
	return nil
}
