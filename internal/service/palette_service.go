package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/model"
	"github.com/mmark3273/sibur/internal/repository"
)

// PaletteService manages the singleton interface/export color palette.
type PaletteService interface {
	Get(ctx context.Context) (*dto.PaletteResponse, error)
	// Save normalizes each supplied color; blank or malformed values fall
	// back to that role's default.
	Save(ctx context.Context, req *dto.PaletteRequest) (*dto.PaletteResponse, error)
	Reset(ctx context.Context) (*dto.PaletteResponse, error)
}

type paletteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPaletteService builds a PaletteService.
func NewPaletteService(repo *repository.Repository, logger *zap.Logger) PaletteService {
	return &paletteService{repo: repo, logger: logger}
}

func (s *paletteService) Get(ctx context.Context) (*dto.PaletteResponse, error) {
	p, err := s.repo.Palette.Get(ctx)
	if err != nil {
		s.logger.Error("load palette failed", zap.Error(err))
		return nil, err
	}
	return toPaletteResponse(p), nil
}

func (s *paletteService) Save(ctx context.Context, req *dto.PaletteRequest) (*dto.PaletteResponse, error) {
	p := &model.Palette{
		Accent:       normalizeHexColor(req.Accent, model.DefaultAccent),
		ScheduleFill: normalizeHexColor(req.ScheduleFill, model.DefaultScheduleFill),
		PlanFill:     normalizeHexColor(req.PlanFill, model.DefaultPlanFill),
		FactFill:     normalizeHexColor(req.FactFill, model.DefaultFactFill),
		Border:       normalizeHexColor(req.Border, model.DefaultBorder),
	}
	if err := s.repo.Palette.Save(ctx, p); err != nil {
		s.logger.Error("save palette failed", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx)
}

func (s *paletteService) Reset(ctx context.Context) (*dto.PaletteResponse, error) {
	if err := s.repo.Palette.Save(ctx, model.DefaultPalette()); err != nil {
		s.logger.Error("reset palette failed", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx)
}

// ── internal helpers ──

func toPaletteResponse(p *model.Palette) *dto.PaletteResponse {
	return &dto.PaletteResponse{
		Accent:       "#" + p.Accent,
		ScheduleFill: "#" + p.ScheduleFill,
		PlanFill:     "#" + p.PlanFill,
		FactFill:     "#" + p.FactFill,
		Border:       "#" + p.Border,
	}
}

// normalizeHexColor reduces user input to bare lowercase rrggbb. Shorthand
// #abc expands to #aabbcc; anything else falls back to def.
func normalizeHexColor(raw, def string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 && isHex(s) {
		s = strings.Repeat(string(s[0]), 2) +
			strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2)
	}
	if len(s) == 6 && isHex(s) {
		return s
	}
	return def
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
