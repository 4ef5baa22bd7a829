package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmark3273/sibur/internal/model"
)

// VehicleRefRepository is the data access interface for the vehicle directory.
type VehicleRefRepository interface {
	List(ctx context.Context) ([]model.VehicleRef, error)
	// Upsert creates the entry or replaces its attributes, keyed by plate.
	Upsert(ctx context.Context, ref *model.VehicleRef) error
	Delete(ctx context.Context, plate string) error
}

type vehicleRefRepo struct {
	db *gorm.DB
}

// NewVehicleRefRepo builds a VehicleRefRepository.
func NewVehicleRefRepo(db *gorm.DB) VehicleRefRepository {
	return &vehicleRefRepo{db: db}
}

func (r *vehicleRefRepo) List(ctx context.Context) ([]model.VehicleRef, error) {
	var refs []model.VehicleRef
	err := r.db.WithContext(ctx).
		Order("vehicle_plate ASC").
		Find(&refs).Error
	return refs, err
}

func (r *vehicleRefRepo) Upsert(ctx context.Context, ref *model.VehicleRef) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vehicle_plate"}},
			DoUpdates: clause.AssignmentColumns([]string{"schedule_text", "regime_start", "regime_end", "updated_at"}),
		}).
		Create(ref).Error
}

func (r *vehicleRefRepo) Delete(ctx context.Context, plate string) error {
	return r.db.WithContext(ctx).
		Where("vehicle_plate = ?", plate).
		Delete(&model.VehicleRef{}).Error
}
