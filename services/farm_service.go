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

const selectFarms = `
	SELECT f.farm_id, f.user_id, ud.name, f.farm_size, f.survey_number, f.pincode,
	       fst.soil_type_id, st.name, fi.irrigation_id, im.method_name,
	       fw.water_src_id, ws.source, f.created_at
	FROM farms f
	LEFT JOIN user_details ud ON ud.user_id = f.user_id
	LEFT JOIN farms_soil_types fst ON fst.farm_id = f.farm_id
	LEFT JOIN soil_types st ON st.soil_type_id = fst.soil_type_id
	LEFT JOIN farm_irrigation fi ON fi.farm_id = f.farm_id
	LEFT JOIN irrigation_method im ON im.irrigation_id = fi.irrigation_id
	LEFT JOIN farm_water_src fw ON fw.farm_id = f.farm_id
	LEFT JOIN water_src ws ON ws.water_src_id = fw.water_src_id`

type FarmService struct {
	db     *sql.DB
	writer *storage.Writer
	ids    *storage.Allocator
}

func NewFarmService(db *sql.DB, ids *storage.Allocator) *FarmService {
	return &FarmService{db: db, writer: storage.NewWriter(db), ids: ids}
}

func scanFarm(row interface{ Scan(...any) error }) (models.Farm, error) {
	var f models.Farm
	err := row.Scan(&f.FarmID, &f.UserID, &f.OwnerName, &f.FarmSize, &f.SurveyNumber, &f.Pincode,
		&f.SoilTypeID, &f.SoilType, &f.IrrigationID, &f.Irrigation,
		&f.WaterSrcID, &f.WaterSource, &f.CreatedAt)
	return f, err
}

func farmDependents(f models.FarmFields) []storage.Dependent {
	return []storage.Dependent{
		{Association: storage.FarmSoilType, Value: f.SoilTypeID},
		{Association: storage.FarmIrrigation, Value: f.IrrigationID},
		{Association: storage.FarmWaterSource, Value: f.WaterSrcID},
	}
}

func farmReferences(f models.FarmFields) []storage.Bound {
	return []storage.Bound{
		{Ref: storage.RefSoilType, Value: f.SoilTypeID},
		{Ref: storage.RefIrrigation, Value: f.IrrigationID},
		{Ref: storage.RefWaterSource, Value: f.WaterSrcID},
	}
}

func (s *FarmService) List(ctx context.Context, filter models.FarmFilter) ([]models.Farm, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("f.user_id", filter.UserID)
	cond.eq("fst.soil_type_id", filter.SoilTypeID)
	cond.eq("fi.irrigation_id", filter.IrrigationID)
	cond.eq("fw.water_src_id", filter.WaterSrcID)
	cond.eq("f.pincode", filter.Pincode)

	rows, err := s.db.QueryContext(ctx, selectFarms+cond.where()+" ORDER BY f.created_at DESC, f.farm_id", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer rows.Close()

	farms := []models.Farm{}
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan farm: %w", err)
		}
		farms = append(farms, f)
	}
	return farms, rows.Err()
}

func (s *FarmService) Get(ctx context.Context, id string) (*models.Farm, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	f, err := scanFarm(s.db.QueryRowContext(ctx, selectFarms+" WHERE f.farm_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("farm", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return &f, nil
}

// Create inserts the farm and whichever associations were supplied, all or nothing.
func (s *FarmService) Create(ctx context.Context, req models.CreateFarmRequest) (string, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	refs := append([]storage.Bound{{Ref: storage.RefUser, Value: req.UserID}}, farmReferences(req.FarmFields)...)
	err := s.ids.RetryOnCollision(ctx, func() error {
		return s.writer.Write(ctx, func(ctx context.Context, tx *sql.Tx) (any, error) {
			if err := storage.CheckAll(ctx, tx, refs...); err != nil {
				return nil, err
			}
			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return nil, err
			}
			id = key
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO farms (farm_id, user_id, farm_size, survey_number, pincode) VALUES ($1, $2, $3, $4, $5)`,
				key, req.UserID, req.FarmSize, req.SurveyNumber, req.Pincode); err != nil {
				return nil, fmt.Errorf("insert farm: %w", err)
			}
			return key, nil
		}, farmDependents(req.FarmFields)...)
	})
	if err != nil {
		return "", classifyWrite(err)
	}
	return id.String(), nil
}

// Update overwrites the farm columns. Associations left out of req keep their
// current rows; supplied ones are upserted.
func (s *FarmService) Update(ctx context.Context, id string, req models.UpdateFarmRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err := s.writer.Write(ctx, func(ctx context.Context, tx *sql.Tx) (any, error) {
		if err := storage.CheckAll(ctx, tx, farmReferences(req.FarmFields)...); err != nil {
			return nil, err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE farms SET farm_size = $2, survey_number = $3, pincode = $4 WHERE farm_id = $1`,
			id, req.FarmSize, req.SurveyNumber, req.Pincode)
		if err != nil {
			return nil, fmt.Errorf("update farm: %w", err)
		}
		if err := rowsAffected(res, "farm", id); err != nil {
			return nil, err
		}
		return id, nil
	}, farmDependents(req.FarmFields)...)
	return classifyWrite(err)
}

// Delete removes the farm; its association rows cascade. Farms with crops are kept.
func (s *FarmService) Delete(ctx context.Context, id string) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM farms WHERE farm_id = $1`, id)
	if err != nil {
		return classifyDelete(fmt.Errorf("delete farm: %w", err))
	}
	return rowsAffected(res, "farm", id)
}
