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

func TestRemedyDeleteWhileMappedConflicts(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))

	mock.ExpectExec(q("DELETE FROM remedies WHERE remedy_id = $1")).WithArgs(int64(31877)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "disease_remedy_remedy_id_fkey"})

	err := svc.Delete(context.Background(), 31877)
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemedyDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))

	mock.ExpectExec(q("DELETE FROM remedies")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, svc.Delete(context.Background(), 31877), ErrNotFound)
}

func TestRemedyListAggregatesMappedDiseases(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))

	mock.ExpectQuery(q("GROUP BY r.remedy_id ORDER BY r.remedy_id")).
		WillReturnRows(sqlmock.NewRows([]string{"remedy_id", "remedy", "prevention", "mapped"}).
			AddRow(31877, "Copper fungicide spray", "Rotate crops yearly", "{20451,20452}").
			AddRow(31900, "Neem oil", nil, "{}"))

	remedies, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remedies, 2)
	assert.Equal(t, []int64{20451, 20452}, remedies[0].MappedDiseases)
	assert.Empty(t, remedies[1].MappedDiseases)
	assert.Nil(t, remedies[1].Prevention)
}

func TestRemedyCreate(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))

	mock.ExpectBegin()
	expectFreeKey(mock, "remedies")
	mock.ExpectExec(q("INSERT INTO remedies")).
		WithArgs(int64(10000), "Neem oil", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := svc.Create(context.Background(), models.RemedyRequest{Remedy: "Neem oil"})
	require.NoError(t, err)
	assert.EqualValues(t, 10000, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemedyMapping(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))
	req := models.MappingRequest{DiseaseID: 20451, RemedyID: 31877}

	t.Run("duplicate", func(t *testing.T) {
		mock.ExpectBegin()
		expectExists(mock, "diseases", true)
		expectExists(mock, "remedies", true)
		mock.ExpectExec(q("INSERT INTO disease_remedy")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "disease_remedy_pkey"})
		mock.ExpectRollback()
		require.ErrorIs(t, svc.Map(context.Background(), req), ErrConflict)
	})

	t.Run("unknown disease", func(t *testing.T) {
		mock.ExpectBegin()
		expectExists(mock, "diseases", false)
		mock.ExpectRollback()
		require.ErrorIs(t, svc.Map(context.Background(), req), ErrInvalidInput)
	})

	t.Run("unmap absent", func(t *testing.T) {
		mock.ExpectExec(q("DELETE FROM disease_remedy")).WithArgs(int64(20451), int64(31877)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, svc.Unmap(context.Background(), req), ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemediesForUnknownDisease(t *testing.T) {
	db, mock := newMock(t)
	svc := NewRemedyService(db, lowestIDs(storage.RemedyIDs))

	expectExists(mock, "diseases", false)

	_, err := svc.RemediesFor(context.Background(), 20451)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDiseaseDeleteWhileMappedConflicts(t *testing.T) {
	db, mock := newMock(t)
	svc := NewDiseaseService(db, lowestIDs(storage.DiseaseIDs))

	mock.ExpectExec(q("DELETE FROM diseases")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "disease_remedy_disease_id_fkey"})

	require.ErrorIs(t, svc.Delete(context.Background(), 20451), ErrConflict)
}

func TestDiseaseCreateUnknownPlant(t *testing.T) {
	db, mock := newMock(t)
	svc := NewDiseaseService(db, lowestIDs(storage.DiseaseIDs))

	mock.ExpectBegin()
	expectExists(mock, "plants", false)
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), models.DiseaseRequest{Name: "Blight", PlantID: 10452})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseUpdateReturnsJoinedRow(t *testing.T) {
	db, mock := newMock(t)
	svc := NewDiseaseService(db, lowestIDs(storage.DiseaseIDs))

	mock.ExpectBegin()
	expectExists(mock, "plants", true)
	mock.ExpectExec(q("UPDATE diseases SET name = $2, severity = $3, plant_id = $4 WHERE disease_id = $1")).
		WithArgs(int64(20451), "Late Blight", strp("High"), int64(10452)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(q("WHERE d.disease_id = $1")).WithArgs(int64(20451)).
		WillReturnRows(sqlmock.NewRows([]string{"disease_id", "name", "severity", "plant_id", "plant_name"}).
			AddRow(int64(20451), "Late Blight", "High", int64(10452), "Tomato"))

	d, err := svc.Update(context.Background(), 20451, models.DiseaseRequest{Name: "Late Blight", Severity: strp("High"), PlantID: 10452})
	require.NoError(t, err)
	assert.Equal(t, "Late Blight", d.Name)
	assert.Equal(t, "Tomato", d.PlantName)
	require.NotNil(t, d.Severity)
	assert.Equal(t, "High", *d.Severity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseUpdateMissing(t *testing.T) {
	db, mock := newMock(t)
	svc := NewDiseaseService(db, lowestIDs(storage.DiseaseIDs))

	mock.ExpectBegin()
	expectExists(mock, "plants", true)
	mock.ExpectExec(q("UPDATE diseases")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), 20451, models.DiseaseRequest{Name: "Late Blight", PlantID: 10452})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseUpdateUnknownPlant(t *testing.T) {
	db, mock := newMock(t)
	svc := NewDiseaseService(db, lowestIDs(storage.DiseaseIDs))

	mock.ExpectBegin()
	expectExists(mock, "plants", false)
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), 20451, models.DiseaseRequest{Name: "Late Blight", PlantID: 10452})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.NoError(t, mock.ExpectationsWereMet())
}
