package dto

// PaletteRequest carries user-supplied colors; any field may be blank or
// malformed, in which case the default for that role is used.
type PaletteRequest struct {
	Accent       string `json:"accent"`
	ScheduleFill string `json:"schedule_fill"`
	PlanFill     string `json:"plan_fill"`
	FactFill     string `json:"fact_fill"`
	Border       string `json:"border"`
}

// PaletteResponse returns the stored palette as css hex colors ("#rrggbb").
type PaletteResponse struct {
	Accent       string `json:"accent"`
	ScheduleFill string `json:"schedule_fill"`
	PlanFill     string `json:"plan_fill"`
	FactFill     string `json:"fact_fill"`
	Border       string `json:"border"`
}
