package models

// Reference tables. Ids are allocated by the server, names are unique.

type SoilType struct {
	SoilTypeID int64  `gorm:"primaryKey;autoIncrement:false;column:soil_type_id" json:"soil_type_id" example:"10231"`
	Name       string `gorm:"column:name;not null;uniqueIndex" json:"name" binding:"required" example:"Red Soil"`
}

func (SoilType) TableName() string { return "soil_types" }
func (SoilType) KeyColumn() string { return "soil_type_id" }
func (s *SoilType) SetKey(id int64) { s.SoilTypeID = id }
func (s *SoilType) Label() *string { return &s.Name }

type Irrigation struct {
	IrrigationID int64  `gorm:"primaryKey;autoIncrement:false;column:irrigation_id" json:"irrigation_id" example:"10877"`
	MethodName   string `gorm:"column:method_name;not null;uniqueIndex" json:"method_name" binding:"required" example:"Drip"`
}

func (Irrigation) TableName() string { return "irrigation_method" }
func (Irrigation) KeyColumn() string { return "irrigation_id" }
func (i *Irrigation) SetKey(id int64) { i.IrrigationID = id }
func (i *Irrigation) Label() *string { return &i.MethodName }

type WaterSource struct {
	WaterSrcID int64  `gorm:"primaryKey;autoIncrement:false;column:water_src_id" json:"water_src_id" example:"10390"`
	Source     string `gorm:"column:source;not null;uniqueIndex" json:"source" binding:"required" example:"Borewell"`
}

func (WaterSource) TableName() string { return "water_src" }
func (WaterSource) KeyColumn() string { return "water_src_id" }
func (w *WaterSource) SetKey(id int64) { w.WaterSrcID = id }
func (w *WaterSource) Label() *string { return &w.Source }

type CropType struct {
	CropTypeID int64  `gorm:"primaryKey;autoIncrement:false;column:croptype_id" json:"croptype_id" example:"10012"`
	Name       string `gorm:"column:name;not null;uniqueIndex" json:"name" binding:"required" example:"Vegetable"`
}

func (CropType) TableName() string { return "crop_types" }
func (CropType) KeyColumn() string { return "croptype_id" }
func (c *CropType) SetKey(id int64) { c.CropTypeID = id }
func (c *CropType) Label() *string { return &c.Name }

type Plant struct {
	PlantID          int64   `gorm:"primaryKey;autoIncrement:false;column:plant_id" json:"plant_id" example:"10452"`
	PlantName        string  `gorm:"column:plant_name;not null;uniqueIndex" json:"plant_name" binding:"required" example:"Tomato"`
	CropTypeID       *int64  `gorm:"column:crop_type_id" json:"crop_type_id" example:"10012"`
	WaterRequirement *string `gorm:"column:water_requirement" json:"water_requirement" example:"Medium"`
	CropType         *string `gorm:"->;column:crop_type;-:migration" json:"crop_type,omitempty" example:"Vegetable"`
}

func (Plant) TableName() string { return "plants" }
func (Plant) KeyColumn() string { return "plant_id" }
func (p *Plant) SetKey(id int64) { p.PlantID = id }
func (p *Plant) Label() *string { return &p.PlantName }

type State struct {
	StateID   int64  `gorm:"primaryKey;autoIncrement:false;column:state_id" json:"state_id" example:"10029"`
	StateName string `gorm:"column:state_name;not null;uniqueIndex" json:"state_name" binding:"required" example:"Karnataka"`
}

func (State) TableName() string { return "state" }
func (State) KeyColumn() string { return "state_id" }
func (s *State) SetKey(id int64) { s.StateID = id }
func (s *State) Label() *string { return &s.StateName }

type UserCategory struct {
	CategoryID int64  `gorm:"primaryKey;autoIncrement:false;column:category_id" json:"category_id" example:"3"`
	Category   string `gorm:"column:category;not null" json:"category" example:"Admin"`
}

func (UserCategory) TableName() string { return "user_category" }
func (UserCategory) KeyColumn() string { return "category_id" }
func (u *UserCategory) SetKey(id int64) { u.CategoryID = id }
func (u *UserCategory) Label() *string { return &u.Category }
