package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/model"
	"github.com/mmark3273/sibur/internal/repository"
	"github.com/mmark3273/sibur/internal/timegrid"
)

// ── directory module business errors ──

var ErrMissingPlate = errors.New("vehicle_plate must not be empty")

// DirectoryService manages the per-plate vehicle directory.
type DirectoryService interface {
	List(ctx context.Context) (*dto.DirectoryListResponse, error)
	// Upsert stores the entry. Regime times are canonicalized through the
	// normalizer; input that fails to normalize is kept as supplied (it then
	// simply never produces schedule defaults).
	Upsert(ctx context.Context, req *dto.DirectoryUpsertRequest) error
	Delete(ctx context.Context, plate string) error
}

type directoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDirectoryService builds a DirectoryService.
func NewDirectoryService(repo *repository.Repository, logger *zap.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

func (s *directoryService) List(ctx context.Context) (*dto.DirectoryListResponse, error) {
	refs, err := s.repo.VehicleRef.List(ctx)
	if err != nil {
		s.logger.Error("list vehicle directory failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.DirectoryEntryResponse, 0, len(refs))
	for _, ref := range refs {
		items = append(items, dto.DirectoryEntryResponse{
			VehiclePlate: ref.VehiclePlate,
			ScheduleText: ref.ScheduleText,
			RegimeStart:  ref.RegimeStart,
			RegimeEnd:    ref.RegimeEnd,
		})
	}
	return &dto.DirectoryListResponse{Items: items}, nil
}

func (s *directoryService) Upsert(ctx context.Context, req *dto.DirectoryUpsertRequest) error {
	plate := strings.TrimSpace(req.VehiclePlate)
	if plate == "" {
		return ErrMissingPlate
	}

	ref := &model.VehicleRef{
		VehiclePlate: plate,
		ScheduleText: strings.TrimSpace(req.ScheduleText),
		RegimeStart:  normalizeOrKeep(req.RegimeStart),
		RegimeEnd:    normalizeOrKeep(req.RegimeEnd),
	}
	if err := s.repo.VehicleRef.Upsert(ctx, ref); err != nil {
		s.logger.Error("directory upsert failed", zap.String("plate", plate), zap.Error(err))
		return err
	}
	return nil
}

func (s *directoryService) Delete(ctx context.Context, plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return ErrMissingPlate
	}
	if err := s.repo.VehicleRef.Delete(ctx, plate); err != nil {
		s.logger.Error("directory delete failed", zap.String("plate", plate), zap.Error(err))
		return err
	}
	return nil
}

// normalizeOrKeep canonicalizes a time string, falling back to the trimmed
// raw input when it fails to normalize.
func normalizeOrKeep(raw string) string {
	raw = strings.TrimSpace(raw)
	if t, ok := timegrid.NormalizeTime(raw); ok {
		return t
	}
	return raw
}
