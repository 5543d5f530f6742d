package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"
)

const selectCrops = `
	SELECT uc.user_crop_id, uc.farm_id, uc.plant_id, p.plant_name,
	       to_char(uc.planting_date, 'YYYY-MM-DD'), to_char(uc.harvest_date, 'YYYY-MM-DD'),
	       uc.duration, uc.field_size, uc.soil_type_id, st.name,
	       uc.water_requirement, uc.status, uc.isactive
	FROM user_crops uc
	JOIN plants p ON p.plant_id = uc.plant_id
	LEFT JOIN soil_types st ON st.soil_type_id = uc.soil_type_id`

const statusHarvested = "Harvested"

// CropDuration is the whole number of days between planting and harvest.
func CropDuration(planting, harvest time.Time) int {
	return int(math.Round(harvest.Sub(planting).Hours() / 24))
}

// season parses both dates and derives the duration.
func season(plantingDate, harvestDate string) (time.Time, time.Time, int, error) {
	planting, err := time.Parse(models.DateLayout, plantingDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, invalid("planting_date %q is not YYYY-MM-DD", plantingDate)
	}
	harvest, err := time.Parse(models.DateLayout, harvestDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, invalid("harvest_date %q is not YYYY-MM-DD", harvestDate)
	}
	if harvest.Before(planting) {
		return time.Time{}, time.Time{}, 0, invalid("harvest_date %s is before planting_date %s", harvestDate, plantingDate)
	}
	return planting, harvest, CropDuration(planting, harvest), nil
}

type CropService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewCropService(db *sql.DB, ids *storage.Allocator) *CropService {
	return &CropService{db: db, ids: ids}
}

func scanCrop(row interface{ Scan(...any) error }) (models.Crop, error) {
	var c models.Crop
	err := row.Scan(&c.CropID, &c.FarmID, &c.PlantID, &c.PlantName,
		&c.PlantingDate, &c.HarvestDate, &c.Duration, &c.FieldSize, &c.SoilTypeID, &c.SoilTypeName,
		&c.WaterRequirement, &c.Status, &c.IsActive)
	return c, err
}

func (s *CropService) List(ctx context.Context, filter models.CropFilter) ([]models.Crop, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("uc.farm_id", filter.FarmID)
	cond.eq("uc.plant_id", filter.PlantID)
	cond.eq("uc.isactive", filter.IsActive)

	rows, err := s.db.QueryContext(ctx, selectCrops+cond.where()+" ORDER BY uc.planting_date DESC, uc.user_crop_id", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()

	crops := []models.Crop{}
	for rows.Next() {
		c, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}

func (s *CropService) Get(ctx context.Context, id string) (*models.Crop, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	c, err := scanCrop(s.db.QueryRowContext(ctx, selectCrops+" WHERE uc.user_crop_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("crop", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get crop: %w", err)
	}
	return &c, nil
}

// resolve validates the farm and turns names into ids. The soil type comes
// from req when named, otherwise from the farm's soil association.
func (s *CropService) resolve(ctx context.Context, tx *sql.Tx, req models.CropRequest) (plantID int64, soilTypeID *int64, err error) {
	if err := storage.RefFarm.Check(ctx, tx, req.FarmID); err != nil {
		return 0, nil, err
	}
	plantID, err = lookupID(ctx, tx, `SELECT plant_id FROM plants WHERE plant_name = $1`, "plant_name", req.PlantName)
	if err != nil {
		return 0, nil, err
	}
	if req.SoilTypeName != nil {
		id, err := lookupID(ctx, tx, `SELECT soil_type_id FROM soil_types WHERE name = $1`, "soil_type_name", *req.SoilTypeName)
		if err != nil {
			return 0, nil, err
		}
		return plantID, &id, nil
	}

	var farmSoil int64
	err = tx.QueryRowContext(ctx, `SELECT soil_type_id FROM farms_soil_types WHERE farm_id = $1`, req.FarmID).Scan(&farmSoil)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return plantID, nil, nil
	case err != nil:
		return 0, nil, fmt.Errorf("farm soil type: %w", err)
	}
	return plantID, &farmSoil, nil
}

func (s *CropService) Create(ctx context.Context, req models.CropRequest) (*models.Crop, error) {
	_, _, duration, err := season(req.PlantingDate, req.HarvestDate)
	if err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	qctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	err = s.ids.RetryOnCollision(qctx, func() error {
		return storage.WithTx(qctx, s.db, func(tx *sql.Tx) error {
			plantID, soilTypeID, err := s.resolve(qctx, tx, req)
			if err != nil {
				return err
			}
			key, err := s.ids.Allocate(qctx, tx)
			if err != nil {
				return err
			}
			id = key
			_, err = tx.ExecContext(qctx, `
				INSERT INTO user_crops (user_crop_id, farm_id, plant_id, planting_date, harvest_date, duration,
				                        field_size, soil_type_id, water_requirement, status, isactive)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				key, req.FarmID, plantID, req.PlantingDate, req.HarvestDate, duration,
				req.FieldSize, soilTypeID, req.WaterRequirement, req.Status, active)
			if err != nil {
				return fmt.Errorf("insert crop: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, classifyWrite(err)
	}
	return s.Get(ctx, id.String())
}

// Update overwrites every column and recomputes the duration.
func (s *CropService) Update(ctx context.Context, id string, req models.CropRequest) (*models.Crop, error) {
	_, _, duration, err := season(req.PlantingDate, req.HarvestDate)
	if err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	qctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err = storage.WithTx(qctx, s.db, func(tx *sql.Tx) error {
		plantID, soilTypeID, err := s.resolve(qctx, tx, req)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(qctx, `
			UPDATE user_crops SET farm_id = $2, plant_id = $3, planting_date = $4, harvest_date = $5,
			       duration = $6, field_size = $7, soil_type_id = $8, water_requirement = $9,
			       status = $10, isactive = $11
			WHERE user_crop_id = $1`,
			id, req.FarmID, plantID, req.PlantingDate, req.HarvestDate, duration,
			req.FieldSize, soilTypeID, req.WaterRequirement, req.Status, active)
		if err != nil {
			return fmt.Errorf("update crop: %w", err)
		}
		return rowsAffected(res, "crop", id)
	})
	if err != nil {
		return nil, classifyWrite(err)
	}
	return s.Get(ctx, id)
}

func (s *CropService) Delete(ctx context.Context, id string) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM user_crops WHERE user_crop_id = $1`, id)
	if err != nil {
		return classifyDelete(fmt.Errorf("delete crop: %w", err))
	}
	return rowsAffected(res, "crop", id)
}

// DeactivateHarvested marks active crops whose harvest date is before today.
func (s *CropService) DeactivateHarvested(ctx context.Context, today time.Time) (int64, error) {
	ctx, cancel := utils.GetSlowQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE user_crops SET isactive = FALSE, status = $2 WHERE isactive AND harvest_date < $1`,
		today.Format(models.DateLayout), statusHarvested)
	if err != nil {
		return 0, fmt.Errorf("deactivate harvested crops: %w", err)
	}
	return res.RowsAffected()
}
