package models

const DateLayout = "2006-01-02"

type Crop struct {
	CropID           string   `json:"user_crop_id" example:"004512"`
	FarmID           string   `json:"farm_id" example:"000123"`
	PlantID          int64    `json:"plant_id" example:"10452"`
	PlantName        string   `json:"plant_name" example:"Tomato"`
	PlantingDate     string   `json:"planting_date" example:"2024-01-01"`
	HarvestDate      string   `json:"harvest_date" example:"2024-01-31"`
	Duration         int      `json:"duration" example:"30"`
	FieldSize        *float64 `json:"field_size" example:"1.2"`
	SoilTypeID       *int64   `json:"soil_type_id"`
	SoilTypeName     *string  `json:"soil_type_name" example:"Red Soil"`
	WaterRequirement *string  `json:"water_requirement" example:"Medium"`
	Status           *string  `json:"status" example:"Growing"`
	IsActive         bool     `json:"isactive" example:"true"`
}

type CropRequest struct {
	FarmID           string   `json:"farm_id" binding:"required" example:"000123"`
	PlantName        string   `json:"plant_name" binding:"required" example:"Tomato"`
	PlantingDate     string   `json:"planting_date" binding:"required,datetime=2006-01-02" example:"2024-01-01"`
	HarvestDate      string   `json:"harvest_date" binding:"required,datetime=2006-01-02" example:"2024-01-31"`
	FieldSize        *float64 `json:"field_size" binding:"omitempty,gt=0"`
	WaterRequirement *string  `json:"water_requirement"`
	Status           *string  `json:"status"`
	IsActive         *bool    `json:"isactive"`
	// SoilTypeName overrides the soil type copied from the farm.
	SoilTypeName *string `json:"soil_type_name"`
}

type CropFilter struct {
	FarmID   string `form:"farm_id"`
	PlantID  *int64 `form:"plant_id"`
	IsActive *bool  `form:"isactive"`
}
