package service

import (
	"go.uber.org/zap"

	"github.com/mmark3273/sibur/config"
	"github.com/mmark3273/sibur/internal/repository"
)

// Service aggregates all services.
type Service struct {
	Upload    UploadService
	Grid      GridService
	Mark      MarkService
	Directory DirectoryService
	Palette   PaletteService
	Export    ExportService
}

// NewService builds the service aggregate.
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	cols := cfg.Columns.ColumnMap()

	upload := NewUploadService(cfg, repo, logger)
	grid := NewGridService(cols, repo, logger)
	palette := NewPaletteService(repo, logger)

	return &Service{
		Upload:    upload,
		Grid:      grid,
		Mark:      NewMarkService(repo, logger),
		Directory: NewDirectoryService(repo, logger),
		Palette:   palette,
		Export:    NewExportService(cols, grid, palette, logger),
	}
}
