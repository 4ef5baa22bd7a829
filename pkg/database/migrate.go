package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmark3273/sibur/internal/model"
)

// RunMigrations brings the schema up to date and seeds the palette singleton.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&model.Upload{},
		&model.UploadRow{},
		&model.Mark{},
		&model.VehicleRef{},
		&model.Palette{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Palette is a singleton row; make sure it exists.
	var palette model.Palette
	if err := db.Where("id = ?", 1).Attrs(model.DefaultPalette()).FirstOrCreate(&palette).Error; err != nil {
		return fmt.Errorf("seed palette: %w", err)
	}

	logger.Info("database migrations complete")
	return nil
}
