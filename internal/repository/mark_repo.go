package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmark3273/sibur/internal/model"
)

// MarkRepository is the data access interface for schedule/fact marks.
type MarkRepository interface {
	// Upsert writes one mark cell. The (day, plate, kind, slot) uniqueness
	// constraint makes the write idempotent: an existing row has its value
	// overwritten, never duplicated.
	Upsert(ctx context.Context, mark *model.Mark) error
	ListByDayKind(ctx context.Context, day, kind string) ([]model.Mark, error)
}

type markRepo struct {
	db *gorm.DB
}

// NewMarkRepo builds a MarkRepository.
func NewMarkRepo(db *gorm.DB) MarkRepository {
	return &markRepo{db: db}
}

func (r *markRepo) Upsert(ctx context.Context, mark *model.Mark) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "day"}, {Name: "vehicle_plate"}, {Name: "kind"}, {Name: "slot"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(mark).Error
}

func (r *markRepo) ListByDayKind(ctx context.Context, day, kind string) ([]model.Mark, error) {
	var marks []model.Mark
	err := r.db.WithContext(ctx).
		Where("day = ? AND kind = ?", day, kind).
		Find(&marks).Error
	return marks, err
}
