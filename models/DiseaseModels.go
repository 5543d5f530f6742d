package models

import "time"

type Disease struct {
	DiseaseID int64   `json:"disease_id" example:"20451"`
	Name      string  `json:"name" example:"Early Blight"`
	Severity  *string `json:"severity" example:"High"`
	PlantID   int64   `json:"plant_id" example:"10452"`
	PlantName string  `json:"plant_name" example:"Tomato"`
}

type DiseaseRequest struct {
	Name     string  `json:"name" binding:"required" example:"Early Blight"`
	Severity *string `json:"severity" example:"High"`
	PlantID  int64   `json:"plant_id" binding:"required" example:"10452"`
}

type DiseaseFilter struct {
	PlantID *int64 `form:"plant_id"`
}

type Remedy struct {
	RemedyID       int64   `json:"remedy_id" example:"31877"`
	Remedy         string  `json:"remedy" example:"Copper fungicide spray"`
	Prevention     *string `json:"prevention" example:"Rotate crops yearly"`
	MappedDiseases []int64 `json:"mapped_diseases,omitempty"`
}

type RemedyRequest struct {
	Remedy     string  `json:"remedy" binding:"required" example:"Copper fungicide spray"`
	Prevention *string `json:"prevention"`
}

type MappingRequest struct {
	DiseaseID int64 `json:"disease_id" binding:"required" example:"20451"`
	RemedyID  int64 `json:"remedy_id" binding:"required" example:"31877"`
}

type Image struct {
	ImageID   int64     `json:"image_id" example:"55120"`
	CropID    string    `json:"crop_id" example:"004512"`
	ImageURL  string    `json:"image_url" example:"https://cdn.example.com/crops/004512/leaf.jpg"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageRequest struct {
	CropID   string `json:"crop_id" form:"crop_id" binding:"required" example:"004512"`
	ImageURL string `json:"image_url" form:"image_url" binding:"omitempty,url"`
}

type ImageFilter struct {
	CropID string `form:"crop_id"`
}

// AnalysisResult is an immutable record of one diagnosis.
type AnalysisResult struct {
	ID          int64     `json:"id" example:"77310"`
	UserID      int64     `json:"user_id" example:"482913"`
	CropID      string    `json:"crop_id" example:"004512"`
	ImageID     int64     `json:"image_id" example:"55120"`
	ImageURL    string    `json:"image_url"`
	DiseaseID   int64     `json:"disease_id" example:"20451"`
	DiseaseName string    `json:"disease_name" example:"Early Blight"`
	PlantID     int64     `json:"plant_id" example:"10452"`
	PlantName   string    `json:"plant_name" example:"Tomato"`
	RemedyID    int64     `json:"remedy_id" example:"31877"`
	Remedy      string    `json:"remedy" example:"Copper fungicide spray"`
	Confidence  float64   `json:"confidence" example:"92.5"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnalysisRequest struct {
	UserID     int64    `json:"user_id" binding:"required"`
	CropID     string   `json:"crop_id" binding:"required"`
	ImageID    int64    `json:"image_id" binding:"required"`
	DiseaseID  int64    `json:"disease_id" binding:"required"`
	RemedyID   int64    `json:"remedy_id" binding:"required"`
	Confidence *float64 `json:"confidence" binding:"required,gte=0,lte=100" example:"92.5"`
}

// AnalysisFilter fields are combined with AND.
type AnalysisFilter struct {
	UserID    *int64 `form:"user_id"`
	PlantID   *int64 `form:"plant_id"`
	CropID    string `form:"crop_id"`
	ImageID   *int64 `form:"image_id"`
	DiseaseID *int64 `form:"disease_id"`
	RemedyID  *int64 `form:"remedy_id"`
}
