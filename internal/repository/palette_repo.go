package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mmark3273/sibur/internal/model"
)

// PaletteRepository is the data access interface for the palette singleton.
type PaletteRepository interface {
	// Get returns the singleton row, creating it with defaults if missing.
	Get(ctx context.Context) (*model.Palette, error)
	Save(ctx context.Context, p *model.Palette) error
}

type paletteRepo struct {
	db *gorm.DB
}

// NewPaletteRepo builds a PaletteRepository.
func NewPaletteRepo(db *gorm.DB) PaletteRepository {
	return &paletteRepo{db: db}
}

func (r *paletteRepo) Get(ctx context.Context) (*model.Palette, error) {
	var p model.Palette
	err := r.db.WithContext(ctx).
		Where("id = ?", 1).
		Attrs(model.DefaultPalette()).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paletteRepo) Save(ctx context.Context, p *model.Palette) error {
	p.ID = 1
	return r.db.WithContext(ctx).
		Model(&model.Palette{}).
		Where("id = ?", 1).
		Updates(map[string]interface{}{
			"accent":        p.Accent,
			"schedule_fill": p.ScheduleFill,
			"plan_fill":     p.PlanFill,
			"fact_fill":     p.FactFill,
			"border":        p.Border,
		}).Error
}
