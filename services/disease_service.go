package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"
)

const selectDiseases = `
	SELECT d.disease_id, d.name, d.severity, d.plant_id, p.plant_name
	FROM diseases d
	JOIN plants p ON p.plant_id = d.plant_id`

type DiseaseService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewDiseaseService(db *sql.DB, ids *storage.Allocator) *DiseaseService {
	return &DiseaseService{db: db, ids: ids}
}

func scanDisease(row interface{ Scan(...any) error }) (models.Disease, error) {
	var d models.Disease
	err := row.Scan(&d.DiseaseID, &d.Name, &d.Severity, &d.PlantID, &d.PlantName)
	return d, err
}

func (s *DiseaseService) List(ctx context.Context, filter models.DiseaseFilter) ([]models.Disease, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("d.plant_id", filter.PlantID)
	rows, err := s.db.QueryContext(ctx, selectDiseases+cond.where()+" ORDER BY d.disease_id", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list diseases: %w", err)
	}
	defer rows.Close()

	diseases := []models.Disease{}
	for rows.Next() {
		d, err := scanDisease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disease: %w", err)
		}
		diseases = append(diseases, d)
	}
	return diseases, rows.Err()
}

func (s *DiseaseService) Get(ctx context.Context, id int64) (*models.Disease, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	d, err := scanDisease(s.db.QueryRowContext(ctx, selectDiseases+" WHERE d.disease_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("disease", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get disease: %w", err)
	}
	return &d, nil
}

// Create returns the stored disease joined with its plant name.
func (s *DiseaseService) Create(ctx context.Context, req models.DiseaseRequest) (*models.Disease, error) {
	qctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	err := s.ids.RetryOnCollision(qctx, func() error {
		return storage.WithTx(qctx, s.db, func(tx *sql.Tx) error {
			if err := storage.RefPlant.Check(qctx, tx, req.PlantID); err != nil {
				return err
			}
			key, err := s.ids.Allocate(qctx, tx)
			if err != nil {
				return err
			}
			id = key
			if _, err := tx.ExecContext(qctx,
				`INSERT INTO diseases (disease_id, name, severity, plant_id) VALUES ($1, $2, $3, $4)`,
				key, req.Name, req.Severity, req.PlantID); err != nil {
				return fmt.Errorf("insert disease: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, classifyWrite(err)
	}
	return s.Get(ctx, id.Int())
}

func (s *DiseaseService) Update(ctx context.Context, id int64, req models.DiseaseRequest) (*models.Disease, error) {
	qctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err := storage.WithTx(qctx, s.db, func(tx *sql.Tx) error {
		if err := storage.RefPlant.Check(qctx, tx, req.PlantID); err != nil {
			return err
		}
		res, err := tx.ExecContext(qctx,
			`UPDATE diseases SET name = $2, severity = $3, plant_id = $4 WHERE disease_id = $1`,
			id, req.Name, req.Severity, req.PlantID)
		if err != nil {
			return fmt.Errorf("update disease: %w", err)
		}
		return rowsAffected(res, "disease", id)
	})
	if err != nil {
		return nil, classifyWrite(err)
	}
	return s.Get(ctx, id)
}

// Delete fails with ErrConflict while remedies are still mapped to the disease.
func (s *DiseaseService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM diseases WHERE disease_id = $1`, id)
	if err != nil {
		return classifyDelete(fmt.Errorf("delete disease: %w", err))
	}
	return rowsAffected(res, "disease", id)
}
