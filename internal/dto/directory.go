package dto

// ── vehicle directory ──

// DirectoryUpsertRequest creates or replaces one directory entry.
type DirectoryUpsertRequest struct {
	VehiclePlate string `json:"vehicle_plate" binding:"required"`
	ScheduleText string `json:"schedule_text"`
	RegimeStart  string `json:"regime_start"`
	RegimeEnd    string `json:"regime_end"`
}

// DirectoryEntryResponse is one directory entry as listed.
type DirectoryEntryResponse struct {
	VehiclePlate string `json:"vehicle_plate"`
	ScheduleText string `json:"schedule_text"`
	RegimeStart  string `json:"regime_start"`
	RegimeEnd    string `json:"regime_end"`
}

// DirectoryListResponse is the full directory.
type DirectoryListResponse struct {
	Items []DirectoryEntryResponse `json:"items"`
}
