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

// ── mark module business errors ──

var (
	ErrInvalidKind     = errors.New("kind must be schedule or fact")
	ErrInvalidSlot     = errors.New("slot is not a canonical slot label")
	ErrMissingDayPlate = errors.New("day and plate must not be empty")
)

// MarkService writes single grid cells of the schedule and fact layers.
type MarkService interface {
	// Write validates and upserts one mark. Rejections mutate nothing.
	Write(ctx context.Context, req *dto.MarkRequest) error
}

type markService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMarkService builds a MarkService.
func NewMarkService(repo *repository.Repository, logger *zap.Logger) MarkService {
	return &markService{repo: repo, logger: logger}
}

func (s *markService) Write(ctx context.Context, req *dto.MarkRequest) error {
	if req.Kind != model.MarkKindSchedule && req.Kind != model.MarkKindFact {
		return ErrInvalidKind
	}
	if !timegrid.IsSlot(req.Slot) {
		return ErrInvalidSlot
	}
	day := strings.TrimSpace(req.Day)
	plate := strings.TrimSpace(req.Plate)
	if day == "" || plate == "" {
		return ErrMissingDayPlate
	}

	value := 0
	if req.Value != 0 {
		value = 1
	}

	mark := &model.Mark{
		Day:          day,
		VehiclePlate: plate,
		Kind:         req.Kind,
		Slot:         req.Slot,
		Value:        value,
	}
	if err := s.repo.Mark.Upsert(ctx, mark); err != nil {
		s.logger.Error("mark upsert failed",
			zap.String("day", day),
			zap.String("plate", plate),
			zap.String("kind", req.Kind),
			zap.String("slot", req.Slot),
			zap.Error(err),
		)
		return err
	}
	return nil
}
