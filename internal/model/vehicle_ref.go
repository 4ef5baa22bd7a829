package model

// VehicleRef is the per-plate directory entry — corresponds to vehicle_refs.
// Regime bounds are "HH:MM" when they normalized on write; free-form text is
// stored as supplied otherwise and simply never generates schedule defaults.
type VehicleRef struct {
	VehiclePlate string `gorm:"type:text;primaryKey"        json:"vehicle_plate"`
	ScheduleText string `gorm:"type:text;not null;default:''" json:"schedule_text"`
	RegimeStart  string `gorm:"type:text;not null;default:''" json:"regime_start"`
	RegimeEnd    string `gorm:"type:text;not null;default:''" json:"regime_end"`
	BaseModel
}

// TableName sets the table name.
func (VehicleRef) TableName() string { return "vehicle_refs" }
