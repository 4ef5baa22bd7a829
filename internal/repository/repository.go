package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	Upload     UploadRepository
	Mark       MarkRepository
	VehicleRef VehicleRefRepository
	Palette    PaletteRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Upload:     NewUploadRepo(db),
		Mark:       NewMarkRepo(db),
		VehicleRef: NewVehicleRefRepo(db),
		Palette:    NewPaletteRepo(db),
	}
}
