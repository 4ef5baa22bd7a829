package model

// Mark kinds. The schedule layer holds intended working hours, the fact layer
// observed activity.
const (
	MarkKindSchedule = "schedule"
	MarkKindFact     = "fact"
)

// Mark is one persisted boolean cell of the schedule or fact layer —
// corresponds to marks. At most one row exists per (day, plate, kind, slot);
// writes are idempotent upserts, no history is kept.
type Mark struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"                          json:"id"`
	Day          string `gorm:"type:text;not null;uniqueIndex:uq_marks_cell"      json:"day"`  // YYYY-MM-DD
	VehiclePlate string `gorm:"type:text;not null;uniqueIndex:uq_marks_cell"      json:"vehicle_plate"`
	Kind         string `gorm:"type:text;not null;uniqueIndex:uq_marks_cell"      json:"kind"`
	Slot         string `gorm:"type:text;not null;uniqueIndex:uq_marks_cell"      json:"slot"` // HH:MM
	Value        int    `gorm:"not null"                                          json:"value"`
}

// TableName sets the table name.
func (Mark) TableName() string { return "marks" }
