package dto

// ── upload / meta ──

// UploadResponse describes an ingested workbook: everything the filter UI
// needs to render its controls.
type UploadResponse struct {
	UploadID int64               `json:"upload_id"`
	Filename string              `json:"filename"`
	Columns  []string            `json:"columns"`
	Dates    []string            `json:"dates"`
	Values   map[string][]string `json:"values"`
	RowCount int                 `json:"row_count"`
}

// MetaResponse reports whether any data was uploaded and, if so, the active
// upload's filter metadata.
type MetaResponse struct {
	HasData  bool                `json:"has_data"`
	UploadID int64               `json:"upload_id,omitempty"`
	Columns  []string            `json:"columns,omitempty"`
	Dates    []string            `json:"dates,omitempty"`
	Values   map[string][]string `json:"values,omitempty"`
}
