package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAppliesSchemaInTx(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(schema)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied for schema public"))
	mock.ExpectRollback()

	err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply schema")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaIsIdempotent(t *testing.T) {
	assert.NotContains(t, regexp.MustCompile(`CREATE TABLE IF NOT EXISTS`).ReplaceAllString(schema, ""), "CREATE TABLE")
	assert.Contains(t, schema, "(3, 'Admin')")
	assert.Contains(t, schema, "ON CONFLICT (category_id) DO NOTHING")
}
