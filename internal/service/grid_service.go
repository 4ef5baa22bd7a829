package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/model"
	"github.com/mmark3273/sibur/internal/repository"
	"github.com/mmark3273/sibur/internal/timegrid"
)

// ── grid module business errors ──

var (
	ErrNoData         = errors.New("no uploaded data")
	ErrUploadNotFound = errors.New("upload not found")
	ErrBadDay         = errors.New("day must be a valid date")
	ErrBadFilters     = errors.New("filters must be a JSON object mapping column to value list")
)

// GridService assembles the per-day grid from fresh store snapshots.
type GridService interface {
	// GetGrid recomputes the full grid for one day. The engine itself is
	// stateless; every call re-reads records, marks and directory.
	GetGrid(ctx context.Context, req *dto.GridRequest) (*timegrid.Grid, error)
}

type gridService struct {
	cols   timegrid.ColumnMap
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGridService builds a GridService.
func NewGridService(cols timegrid.ColumnMap, repo *repository.Repository, logger *zap.Logger) GridService {
	return &gridService{cols: cols, repo: repo, logger: logger}
}

func (s *gridService) GetGrid(ctx context.Context, req *dto.GridRequest) (*timegrid.Grid, error) {
	day, ok := timegrid.NormalizeDate(strings.TrimSpace(req.Day))
	if !ok {
		return nil, ErrBadDay
	}
	filters, err := parseFilters(req.Filters)
	if err != nil {
		return nil, err
	}

	// Dataset version: explicit upload_id, or the most recent upload.
	var upload *model.Upload
	if req.UploadID != nil {
		upload, err = s.repo.Upload.GetByID(ctx, *req.UploadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUploadNotFound
			}
			s.logger.Error("query upload failed", zap.Int64p("upload_id", req.UploadID), zap.Error(err))
			return nil, err
		}
	} else {
		upload, err = s.repo.Upload.Latest(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoData
			}
			s.logger.Error("query latest upload failed", zap.Error(err))
			return nil, err
		}
	}

	rows, err := s.repo.Upload.ListRows(ctx, upload.ID)
	if err != nil {
		s.logger.Error("load upload rows failed", zap.Int64("upload_id", upload.ID), zap.Error(err))
		return nil, err
	}
	records := decodeRows(rows, s.logger)

	scheduleMarks, err := s.markGrid(ctx, day, model.MarkKindSchedule)
	if err != nil {
		return nil, err
	}
	factMarks, err := s.markGrid(ctx, day, model.MarkKindFact)
	if err != nil {
		return nil, err
	}

	refs, err := s.repo.VehicleRef.List(ctx)
	if err != nil {
		s.logger.Error("load vehicle directory failed", zap.Error(err))
		return nil, err
	}
	directory := make(map[string]timegrid.DirectoryEntry, len(refs))
	for _, ref := range refs {
		directory[ref.VehiclePlate] = timegrid.DirectoryEntry{
			ScheduleText: ref.ScheduleText,
			RegimeStart:  ref.RegimeStart,
			RegimeEnd:    ref.RegimeEnd,
		}
	}

	return timegrid.Assemble(records, day, filters, scheduleMarks, factMarks, directory, s.cols), nil
}

func (s *gridService) markGrid(ctx context.Context, day, kind string) (timegrid.MarkGrid, error) {
	marks, err := s.repo.Mark.ListByDayKind(ctx, day, kind)
	if err != nil {
		s.logger.Error("load marks failed", zap.String("day", day), zap.String("kind", kind), zap.Error(err))
		return nil, err
	}
	grid := make(timegrid.MarkGrid)
	for _, m := range marks {
		if grid[m.VehiclePlate] == nil {
			grid[m.VehiclePlate] = make(map[string]int)
		}
		grid[m.VehiclePlate][m.Slot] = m.Value
	}
	return grid, nil
}

func parseFilters(raw string) (timegrid.FilterSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var spec timegrid.FilterSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, ErrBadFilters
	}
	return spec, nil
}
