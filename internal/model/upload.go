package model

import "time"

// Upload is one ingested request workbook — corresponds to uploads.
// Columns preserves the header order of the first sheet as a JSON array; rows
// keep their original cell values as JSON objects so arbitrary, upload-defined
// column sets survive round-tripping.
type Upload struct {
	ID         int64       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Filename   string      `gorm:"type:text;not null"        json:"filename"`
	Columns    string      `gorm:"type:text;not null"        json:"-"` // JSON array of column names
	UploadedAt time.Time   `gorm:"not null;autoCreateTime"   json:"uploaded_at"`
	Rows       []UploadRow `gorm:"foreignKey:UploadID"       json:"-"`
}

// TableName sets the table name.
func (Upload) TableName() string { return "uploads" }

// UploadRow is one raw request line — corresponds to upload_rows.
type UploadRow struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UploadID int64  `gorm:"not null;index"           json:"upload_id"`
	RowJSON  string `gorm:"type:text;not null"       json:"-"` // JSON object column→value
}

// TableName sets the table name.
func (UploadRow) TableName() string { return "upload_rows" }
