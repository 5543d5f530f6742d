package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidReference is returned when a referenced row does not exist.
var ErrInvalidReference = errors.New("invalid reference")

// Reference names a column another row must point at.
type Reference struct {
	Field  string
	Table  string
	Column string
}

var (
	RefUser        = Reference{Field: "user_id", Table: "users_auth", Column: "user_id"}
	RefCategory    = Reference{Field: "category_id", Table: "user_category", Column: "category_id"}
	RefFarm        = Reference{Field: "farm_id", Table: "farms", Column: "farm_id"}
	RefCrop        = Reference{Field: "crop_id", Table: "user_crops", Column: "user_crop_id"}
	RefPlant       = Reference{Field: "plant_id", Table: "plants", Column: "plant_id"}
	RefSoilType    = Reference{Field: "soil_type_id", Table: "soil_types", Column: "soil_type_id"}
	RefIrrigation  = Reference{Field: "irrigation_id", Table: "irrigation_method", Column: "irrigation_id"}
	RefWaterSource = Reference{Field: "water_src_id", Table: "water_src", Column: "water_src_id"}
	RefCropType    = Reference{Field: "crop_type_id", Table: "crop_types", Column: "croptype_id"}
	RefDisease     = Reference{Field: "disease_id", Table: "diseases", Column: "disease_id"}
	RefRemedy      = Reference{Field: "remedy_id", Table: "remedies", Column: "remedy_id"}
	RefImage       = Reference{Field: "image_id", Table: "images", Column: "image_id"}
	RefState       = Reference{Field: "state_id", Table: "state", Column: "state_id"}
)

// Check fails with ErrInvalidReference when no row has value in the referenced column.
func (r Reference) Check(ctx context.Context, q DBTX, value any) error {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", r.Table, r.Column)
	if err := q.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return fmt.Errorf("check %s: %w", r.Field, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %v does not exist", ErrInvalidReference, r.Field, value)
	}
	return nil
}

// Bound is a reference paired with the value a write wants to store.
// A nil Value is skipped.
type Bound struct {
	Ref   Reference
	Value any
}

// CheckAll validates every bound reference in order, stopping at the first failure.
func CheckAll(ctx context.Context, q DBTX, refs ...Bound) error {
	for _, b := range refs {
		if isNil(b.Value) {
			continue
		}
		if err := b.Ref.Check(ctx, q, b.Value); err != nil {
			return err
		}
	}
	return nil
}

func isNil(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *int64:
		return x == nil
	case *string:
		return x == nil
	}
	return false
}
