package dto

// GridRequest are the grid query parameters. Filters is a JSON object mapping
// column name → list of accepted values; UploadID selects the dataset version
// and defaults to the most recent upload.
type GridRequest struct {
	Day      string `form:"day"       binding:"required"`
	Filters  string `form:"filters"`
	UploadID *int64 `form:"upload_id" binding:"omitempty,min=1"`
}

// MarkRequest is one mark write: a single boolean cell of the schedule or
// fact layer.
type MarkRequest struct {
	Day   string `json:"day"`
	Plate string `json:"plate"`
	Kind  string `json:"kind"`
	Slot  string `json:"slot"`
	Value int    `json:"value" binding:"min=0,max=1"`
}
