package services

import (
	"context"
	"testing"

	"agriadmin/models"
	"agriadmin/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		UserFields: models.UserFields{
			PhoneNumber: "9876543210",
			Name:        "Ravi Kumar",
			CategoryID:  models.CategoryFarmer,
		},
		Password: "secret123",
	}
}

func TestUserCreateWritesBothRows(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectBegin()
	expectExists(mock, "user_category", true)
	expectFreeKey(mock, "users_auth")
	mock.ExpectExec(q("INSERT INTO users_auth")).
		WithArgs(int64(100000), "9876543210", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("INSERT INTO user_details")).
		WithArgs(int64(100000), "Ravi Kumar", nil, nil, nil, models.CategoryFarmer).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := svc.Create(context.Background(), newUserRequest())
	require.NoError(t, err)
	assert.EqualValues(t, 100000, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicatePhoneConflicts(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectBegin()
	expectExists(mock, "user_category", true)
	expectFreeKey(mock, "users_auth")
	mock.ExpectExec(q("INSERT INTO users_auth")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_auth_phone_number_key"})
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), newUserRequest())
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateUnknownCategory(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectBegin()
	expectExists(mock, "user_category", false)
	mock.ExpectRollback()

	req := newUserRequest()
	req.CategoryID = 9
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserUpdateKeepsPasswordWhenOmitted(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectBegin()
	expectExists(mock, "user_category", true)
	mock.ExpectExec(q("password = COALESCE($4, password)")).
		WithArgs(int64(482913), "9876543210", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("UPDATE user_details")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Update(context.Background(), 482913, models.UpdateUserRequest{UserFields: newUserRequest().UserFields})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM user_details")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("DELETE FROM users_auth")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	require.ErrorIs(t, svc.Delete(context.Background(), 482913), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCategoryOf(t *testing.T) {
	db, mock := newMock(t)
	svc := NewUserService(db, lowestIDs(storage.UserIDs))

	mock.ExpectQuery(q("SELECT category_id FROM user_details")).WithArgs(int64(482913)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}).AddRow(3))
	cat, err := svc.CategoryOf(context.Background(), 482913)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryAdmin, cat)

	mock.ExpectQuery(q("SELECT category_id FROM user_details")).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}))
	_, err = svc.CategoryOf(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}
