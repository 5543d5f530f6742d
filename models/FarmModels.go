package models

import "time"

type Farm struct {
	FarmID       string    `json:"farm_id" example:"000123"`
	UserID       int64     `json:"user_id" example:"482913"`
	OwnerName    *string   `json:"owner_name" example:"Ravi Kumar"`
	FarmSize     *float64  `json:"farm_size" example:"2.5"`
	SurveyNumber *string   `json:"survey_number" example:"112/4B"`
	Pincode      *string   `json:"pincode" example:"560001"`
	SoilTypeID   *int64    `json:"soil_type_id" example:"10231"`
	SoilType     *string   `json:"soil_type" example:"Red Soil"`
	IrrigationID *int64    `json:"irrigation_id"`
	Irrigation   *string   `json:"irrigation" example:"Drip"`
	WaterSrcID   *int64    `json:"water_src_id"`
	WaterSource  *string   `json:"water_source" example:"Borewell"`
	CreatedAt    time.Time `json:"created_at"`
}

// FarmFields are the overwritable columns plus the optional associations.
// A nil association id leaves the stored association untouched.
type FarmFields struct {
	FarmSize     *float64 `json:"farm_size" binding:"omitempty,gt=0" example:"2.5"`
	SurveyNumber *string  `json:"survey_number" example:"112/4B"`
	Pincode      *string  `json:"pincode" binding:"omitempty,pincode" example:"560001"`
	SoilTypeID   *int64   `json:"soil_type_id"`
	IrrigationID *int64   `json:"irrigation_id"`
	WaterSrcID   *int64   `json:"water_src_id"`
}

type CreateFarmRequest struct {
	UserID int64 `json:"user_id" binding:"required" example:"482913"`
	FarmFields
}

type UpdateFarmRequest struct {
	FarmFields
}

type FarmFilter struct {
	UserID       *int64 `form:"user_id"`
	SoilTypeID   *int64 `form:"soil_type_id"`
	IrrigationID *int64 `form:"irrigation_id"`
	WaterSrcID   *int64 `form:"water_src_id"`
	Pincode      string `form:"pincode"`
}
