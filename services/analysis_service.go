package services

import (
	"context"
	"database/sql"
	"fmt"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"
)

const selectAnalysis = `
	SELECT dar.id, dar.user_id, dar.crop_id, dar.image_id, i.image_url,
	       dar.disease_id, d.name, d.plant_id, p.plant_name,
	       dar.remedy_id, r.remedy, dar.confidence, dar.created_at
	FROM disease_analysis_results dar
	JOIN images i ON i.image_id = dar.image_id
	JOIN diseases d ON d.disease_id = dar.disease_id
	JOIN plants p ON p.plant_id = d.plant_id
	JOIN remedies r ON r.remedy_id = dar.remedy_id`

// AnalysisService records diagnoses. Results are never updated or deleted.
type AnalysisService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewAnalysisService(db *sql.DB, ids *storage.Allocator) *AnalysisService {
	return &AnalysisService{db: db, ids: ids}
}

// List returns results matching every supplied filter, newest first.
func (s *AnalysisService) List(ctx context.Context, filter models.AnalysisFilter) ([]models.AnalysisResult, error) {
	ctx, cancel := utils.GetSlowQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("dar.user_id", filter.UserID)
	cond.eq("d.plant_id", filter.PlantID)
	cond.eq("dar.crop_id", filter.CropID)
	cond.eq("dar.image_id", filter.ImageID)
	cond.eq("dar.disease_id", filter.DiseaseID)
	cond.eq("dar.remedy_id", filter.RemedyID)

	rows, err := s.db.QueryContext(ctx, selectAnalysis+cond.where()+" ORDER BY dar.created_at DESC", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list analysis results: %w", err)
	}
	defer rows.Close()

	results := []models.AnalysisResult{}
	for rows.Next() {
		var a models.AnalysisResult
		if err := rows.Scan(&a.ID, &a.UserID, &a.CropID, &a.ImageID, &a.ImageURL,
			&a.DiseaseID, &a.DiseaseName, &a.PlantID, &a.PlantName,
			&a.RemedyID, &a.Remedy, &a.Confidence, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis result: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// Create validates every reference, including that the remedy is mapped to
// the disease, and stores the result.
func (s *AnalysisService) Create(ctx context.Context, req models.AnalysisRequest) (int64, error) {
	if req.Confidence == nil || *req.Confidence < 0 || *req.Confidence > 100 {
		return 0, invalid("confidence must be between 0 and 100")
	}
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	err := s.ids.RetryOnCollision(ctx, func() error {
		return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			if err := storage.CheckAll(ctx, tx,
				storage.Bound{Ref: storage.RefUser, Value: req.UserID},
				storage.Bound{Ref: storage.RefCrop, Value: req.CropID},
				storage.Bound{Ref: storage.RefImage, Value: req.ImageID},
				storage.Bound{Ref: storage.RefDisease, Value: req.DiseaseID},
				storage.Bound{Ref: storage.RefRemedy, Value: req.RemedyID},
			); err != nil {
				return err
			}
			var mapped bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM disease_remedy WHERE disease_id = $1 AND remedy_id = $2)`,
				req.DiseaseID, req.RemedyID).Scan(&mapped); err != nil {
				return fmt.Errorf("check mapping: %w", err)
			}
			if !mapped {
				return fmt.Errorf("%w: remedy %d is not mapped to disease %d",
					storage.ErrInvalidReference, req.RemedyID, req.DiseaseID)
			}

			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return err
			}
			id = key
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO disease_analysis_results (id, user_id, crop_id, image_id, disease_id, remedy_id, confidence)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				key, req.UserID, req.CropID, req.ImageID, req.DiseaseID, req.RemedyID, *req.Confidence); err != nil {
				return fmt.Errorf("insert analysis result: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, classifyWrite(err)
	}
	return id.Int(), nil
}
