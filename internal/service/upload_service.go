package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmark3273/sibur/config"
	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/model"
	"github.com/mmark3273/sibur/internal/repository"
	"github.com/mmark3273/sibur/internal/timegrid"
)

// Caps the number of distinct values collected per column for the filter UI.
const distinctValuesLimit = 500

// ── upload module business errors ──

var (
	ErrUploadParse  = errors.New("workbook could not be parsed")
	ErrUploadNoRows = errors.New("workbook has no data rows below the header")
)

// UploadService ingests request workbooks and reports dataset metadata.
type UploadService interface {
	// Ingest parses the first sheet of an xlsx workbook (first row = header),
	// stores the rows as a new upload and returns the filter metadata.
	Ingest(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)
	// Meta describes the most recent upload, HasData=false when none exists.
	Meta(ctx context.Context) (*dto.MetaResponse, error)
}

type uploadService struct {
	repo   *repository.Repository
	cols   timegrid.ColumnMap
	logger *zap.Logger
}

// NewUploadService builds an UploadService.
func NewUploadService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) UploadService {
	return &uploadService{repo: repo, cols: cfg.Columns.ColumnMap(), logger: logger}
}

// ────────────────────── Ingest ──────────────────────

func (s *uploadService) Ingest(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	columns, records, err := parseWorkbook(r)
	if err != nil {
		return nil, err
	}

	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("encode columns: %w", err)
	}
	rows := make([]model.UploadRow, 0, len(records))
	for _, record := range records {
		rowJSON, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
		rows = append(rows, model.UploadRow{RowJSON: string(rowJSON)})
	}

	upload := &model.Upload{Filename: filename, Columns: string(columnsJSON)}
	if err := s.repo.Upload.Create(ctx, upload, rows); err != nil {
		s.logger.Error("store upload failed", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	s.logger.Info("upload ingested",
		zap.Int64("upload_id", upload.ID),
		zap.String("filename", filename),
		zap.Int("rows", len(records)),
	)

	return &dto.UploadResponse{
		UploadID: upload.ID,
		Filename: filename,
		Columns:  columns,
		Dates:    timegrid.DistinctDays(records, s.cols.Date),
		Values:   timegrid.DistinctValues(records, columns, distinctValuesLimit),
		RowCount: len(records),
	}, nil
}

// ────────────────────── Meta ──────────────────────

func (s *uploadService) Meta(ctx context.Context) (*dto.MetaResponse, error) {
	upload, err := s.repo.Upload.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.MetaResponse{HasData: false}, nil
		}
		s.logger.Error("query latest upload failed", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Upload.ListRows(ctx, upload.ID)
	if err != nil {
		s.logger.Error("load upload rows failed", zap.Int64("upload_id", upload.ID), zap.Error(err))
		return nil, err
	}
	records := decodeRows(rows, s.logger)
	columns := decodeColumns(upload.Columns)

	return &dto.MetaResponse{
		HasData:  true,
		UploadID: upload.ID,
		Columns:  columns,
		Dates:    timegrid.DistinctDays(records, s.cols.Date),
		Values:   timegrid.DistinctValues(records, columns, distinctValuesLimit),
	}, nil
}

// ── internal helpers ──

// parseWorkbook reads the first sheet: first row is the header, every later
// non-blank row becomes a record keyed by the header labels. Cells are read
// raw, not formatted: a native date or time cell is stored as its serial
// number and must arrive at the normalizer as float64, not as whatever
// display string the cell's number format would produce.
func parseWorkbook(r io.Reader) ([]string, []timegrid.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUploadParse, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUploadParse, err)
	}
	if len(cells) < 2 {
		return nil, nil, ErrUploadNoRows
	}

	var columns []string
	for _, h := range cells[0] {
		if s := strings.TrimSpace(h); s != "" {
			columns = append(columns, s)
		}
	}
	if len(columns) == 0 {
		return nil, nil, ErrUploadParse
	}

	var records []timegrid.Record
	for _, row := range cells[1:] {
		record := make(timegrid.Record, len(columns))
		blank := true
		for i, col := range columns {
			if i >= len(row) {
				break
			}
			value := strings.TrimSpace(row[i])
			if value == "" {
				continue
			}
			record[col] = cellValue(value)
			blank = false
		}
		if !blank {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		return nil, nil, ErrUploadNoRows
	}
	return columns, records, nil
}

// cellValue keeps numeric cells numeric. Raw date cells carry the Excel
// serial day count, raw time cells the day fraction; both round-trip through
// the row JSON as float64 and hit the normalizer's serial branches.
func cellValue(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// decodeRows turns stored row JSON back into engine records. Rows that fail to
// decode are skipped, not fatal: one corrupt row must not take down the grid.
func decodeRows(rows []model.UploadRow, logger *zap.Logger) []timegrid.Record {
	records := make([]timegrid.Record, 0, len(rows))
	for _, row := range rows {
		var record timegrid.Record
		if err := json.Unmarshal([]byte(row.RowJSON), &record); err != nil {
			logger.Warn("skipping undecodable upload row", zap.Int64("row_id", row.ID), zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records
}

func decodeColumns(columnsJSON string) []string {
	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil
	}
	return columns
}
