package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"

	"github.com/lib/pq"
)

const selectRemedies = `
	SELECT r.remedy_id, r.remedy, r.prevention,
	       COALESCE(array_agg(dr.disease_id ORDER BY dr.disease_id) FILTER (WHERE dr.disease_id IS NOT NULL), '{}')
	FROM remedies r
	LEFT JOIN disease_remedy dr ON dr.remedy_id = r.remedy_id`

type RemedyService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewRemedyService(db *sql.DB, ids *storage.Allocator) *RemedyService {
	return &RemedyService{db: db, ids: ids}
}

func scanRemedy(row interface{ Scan(...any) error }) (models.Remedy, error) {
	var (
		r      models.Remedy
		mapped pq.Int64Array
	)
	if err := row.Scan(&r.RemedyID, &r.Remedy, &r.Prevention, &mapped); err != nil {
		return r, err
	}
	r.MappedDiseases = []int64(mapped)
	return r, nil
}

// List returns every remedy with the ids of the diseases it treats.
func (s *RemedyService) List(ctx context.Context) ([]models.Remedy, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectRemedies+" GROUP BY r.remedy_id ORDER BY r.remedy_id")
	if err != nil {
		return nil, fmt.Errorf("list remedies: %w", err)
	}
	defer rows.Close()

	remedies := []models.Remedy{}
	for rows.Next() {
		r, err := scanRemedy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan remedy: %w", err)
		}
		remedies = append(remedies, r)
	}
	return remedies, rows.Err()
}

func (s *RemedyService) Get(ctx context.Context, id int64) (*models.Remedy, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	r, err := scanRemedy(s.db.QueryRowContext(ctx, selectRemedies+" WHERE r.remedy_id = $1 GROUP BY r.remedy_id", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("remedy", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get remedy: %w", err)
	}
	return &r, nil
}

func (s *RemedyService) Create(ctx context.Context, req models.RemedyRequest) (int64, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	err := s.ids.RetryOnCollision(ctx, func() error {
		return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return err
			}
			id = key
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO remedies (remedy_id, remedy, prevention) VALUES ($1, $2, $3)`,
				key, req.Remedy, req.Prevention); err != nil {
				return fmt.Errorf("insert remedy: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, classifyWrite(err)
	}
	return id.Int(), nil
}

func (s *RemedyService) Update(ctx context.Context, id int64, req models.RemedyRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE remedies SET remedy = $2, prevention = $3 WHERE remedy_id = $1`,
		id, req.Remedy, req.Prevention)
	if err != nil {
		return classifyWrite(fmt.Errorf("update remedy: %w", err))
	}
	return rowsAffected(res, "remedy", id)
}

// Delete fails with ErrConflict while the remedy is mapped to any disease.
func (s *RemedyService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM remedies WHERE remedy_id = $1`, id)
	if err != nil {
		return classifyDelete(fmt.Errorf("delete remedy: %w", err))
	}
	return rowsAffected(res, "remedy", id)
}

// Map links a remedy to a disease after checking both exist.
func (s *RemedyService) Map(ctx context.Context, req models.MappingRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.CheckAll(ctx, tx,
			storage.Bound{Ref: storage.RefDisease, Value: req.DiseaseID},
			storage.Bound{Ref: storage.RefRemedy, Value: req.RemedyID},
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO disease_remedy (disease_id, remedy_id) VALUES ($1, $2)`,
			req.DiseaseID, req.RemedyID); err != nil {
			return fmt.Errorf("map remedy: %w", err)
		}
		return nil
	})
	return classifyWrite(err)
}

func (s *RemedyService) Unmap(ctx context.Context, req models.MappingRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM disease_remedy WHERE disease_id = $1 AND remedy_id = $2`,
		req.DiseaseID, req.RemedyID)
	if err != nil {
		return classifyDelete(fmt.Errorf("unmap remedy: %w", err))
	}
	return rowsAffected(res, "mapping", fmt.Sprintf("%d/%d", req.DiseaseID, req.RemedyID))
}

// RemediesFor lists the remedies mapped to a disease.
func (s *RemedyService) RemediesFor(ctx context.Context, diseaseID int64) ([]models.Remedy, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	if err := storage.RefDisease.Check(ctx, s.db, diseaseID); err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return nil, notFound("disease", diseaseID)
		}
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.remedy_id, r.remedy, r.prevention
		FROM remedies r
		JOIN disease_remedy dr ON dr.remedy_id = r.remedy_id
		WHERE dr.disease_id = $1
		ORDER BY r.remedy_id`, diseaseID)
	if err != nil {
		return nil, fmt.Errorf("remedies for disease: %w", err)
	}
	defer rows.Close()

	remedies := []models.Remedy{}
	for rows.Next() {
		var r models.Remedy
		if err := rows.Scan(&r.RemedyID, &r.Remedy, &r.Prevention); err != nil {
			return nil, fmt.Errorf("scan remedy: %w", err)
		}
		remedies = append(remedies, r)
	}
	return remedies, rows.Err()
}
