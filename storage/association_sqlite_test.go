package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var farmTables = []string{
	`CREATE TABLE farms (farm_id TEXT PRIMARY KEY, user_id INTEGER NOT NULL)`,
	`CREATE TABLE farms_soil_types (farm_id TEXT PRIMARY KEY REFERENCES farms (farm_id), soil_type_id INTEGER NOT NULL)`,
	`CREATE TABLE farm_irrigation (farm_id TEXT PRIMARY KEY REFERENCES farms (farm_id), irrigation_id INTEGER NOT NULL CHECK (irrigation_id > 0))`,
	`CREATE TABLE farm_water_src (farm_id TEXT PRIMARY KEY REFERENCES farms (farm_id), water_src_id INTEGER NOT NULL)`,
}

// openFarmDB returns an in-memory SQLite pool pinned to one connection so
// every statement sees the same database.
func openFarmDB(t *testing.T) *sql.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	db, err := gdb.DB()
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, ddl := range farmTables {
		_, err = db.Exec(ddl)
		require.NoError(t, err)
	}
	return db
}

func countRows(t *testing.T, db *sql.DB, table, farmID string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE farm_id = $1", farmID).Scan(&n))
	return n
}

func insertFarmRow(id string) PrimaryWrite {
	return func(ctx context.Context, tx *sql.Tx) (any, error) {
		_, err := tx.ExecContext(ctx, "INSERT INTO farms (farm_id, user_id) VALUES ($1, $2)", id, 100001)
		return id, err
	}
}

func TestWriterChangedUpsertKeepsOneRow(t *testing.T) {
	db := openFarmDB(t)
	ctx := context.Background()
	w := NewWriter(db)

	require.NoError(t, w.Write(ctx, insertFarmRow("000123"),
		Dependent{Association: FarmSoilType, Value: ptr(3)},
		Dependent{Association: FarmWaterSource, Value: ptr(9)},
	))

	update := func(ctx context.Context, tx *sql.Tx) (any, error) {
		_, err := tx.ExecContext(ctx, "UPDATE farms SET user_id = $1 WHERE farm_id = $2", 100002, "000123")
		return "000123", err
	}
	require.NoError(t, w.Write(ctx, update,
		Dependent{Association: FarmSoilType, Value: ptr(7)},
		Dependent{Association: FarmWaterSource},
	))

	assert.Equal(t, 1, countRows(t, db, "farms_soil_types", "000123"))
	var soil int64
	require.NoError(t, db.QueryRow("SELECT soil_type_id FROM farms_soil_types WHERE farm_id = $1", "000123").Scan(&soil))
	assert.Equal(t, int64(7), soil)

	var water int64
	require.NoError(t, db.QueryRow("SELECT water_src_id FROM farm_water_src WHERE farm_id = $1", "000123").Scan(&water))
	assert.Equal(t, int64(9), water)
	assert.Equal(t, 0, countRows(t, db, "farm_irrigation", "000123"))
}

func TestWriterFailedDependentLeavesNoRows(t *testing.T) {
	db := openFarmDB(t)

	err := NewWriter(db).Write(context.Background(), insertFarmRow("000124"),
		Dependent{Association: FarmSoilType, Value: ptr(3)},
		Dependent{Association: FarmIrrigation, Value: ptr(-1)},
		Dependent{Association: FarmWaterSource, Value: ptr(9)},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert farm_irrigation")

	assert.Equal(t, 0, countRows(t, db, "farms", "000124"))
	assert.Equal(t, 0, countRows(t, db, "farms_soil_types", "000124"))
	assert.Equal(t, 0, countRows(t, db, "farm_water_src", "000124"))
}
