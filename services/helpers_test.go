package services

import (
	"database/sql"
	"regexp"
	"testing"

	"agriadmin/storage"
	"agriadmin/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// lowestIDs always draws the bottom of the range.
func lowestIDs(spec storage.IDSpec) *storage.Allocator {
	return storage.NewAllocator(spec, storage.WithRandSource(func(int64) int64 { return 0 }))
}

func q(s string) string { return regexp.QuoteMeta(s) }

func expectExists(mock sqlmock.Sqlmock, table string, exists bool) {
	mock.ExpectQuery(q("SELECT EXISTS(SELECT 1 FROM " + table + " WHERE")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectFreeKey(mock sqlmock.Sqlmock, table string) {
	mock.ExpectQuery(q("SELECT 1 FROM " + table + " WHERE")).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
}

func int64p(v int64) *int64 { return &v }

func strp(s string) *string { return &s }

func float64p(v float64) *float64 { return &v }
