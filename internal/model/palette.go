package model

// Default palette colors (css hex without the leading '#').
const (
	DefaultAccent       = "55b4c7"
	DefaultScheduleFill = "55b4c7"
	DefaultPlanFill     = "55b4c7"
	DefaultFactFill     = "2563eb"
	DefaultBorder       = "0b0f14"
)

// Palette is the singleton UI/export color configuration — corresponds to
// palettes, always row id=1.
type Palette struct {
	ID           int64  `gorm:"primaryKey"                    json:"-"`
	Accent       string `gorm:"type:text;not null" json:"accent"`
	ScheduleFill string `gorm:"type:text;not null" json:"schedule_fill"`
	PlanFill     string `gorm:"type:text;not null" json:"plan_fill"`
	FactFill     string `gorm:"type:text;not null" json:"fact_fill"`
	Border       string `gorm:"type:text;not null" json:"border"`
	BaseModel
}

// TableName sets the table name.
func (Palette) TableName() string { return "palettes" }

// DefaultPalette returns the singleton row with factory colors.
func DefaultPalette() *Palette {
	return &Palette{
		ID:           1,
		Accent:       DefaultAccent,
		ScheduleFill: DefaultScheduleFill,
		PlanFill:     DefaultPlanFill,
		FactFill:     DefaultFactFill,
		Border:       DefaultBorder,
	}
}
