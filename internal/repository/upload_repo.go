package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mmark3273/sibur/internal/model"
)

// UploadRepository is the data access interface for uploads and their rows.
type UploadRepository interface {
	// Create stores the upload header together with its rows in one
	// transaction.
	Create(ctx context.Context, upload *model.Upload, rows []model.UploadRow) error
	GetByID(ctx context.Context, id int64) (*model.Upload, error)
	// Latest returns the most recent upload, gorm.ErrRecordNotFound when
	// nothing was ever uploaded.
	Latest(ctx context.Context) (*model.Upload, error)
	ListRows(ctx context.Context, uploadID int64) ([]model.UploadRow, error)
}

type uploadRepo struct {
	db *gorm.DB
}

// NewUploadRepo builds an UploadRepository.
func NewUploadRepo(db *gorm.DB) UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, upload *model.Upload, rows []model.UploadRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(upload).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].UploadID = upload.ID
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 500).Error
	})
}

func (r *uploadRepo) GetByID(ctx context.Context, id int64) (*model.Upload, error) {
	var upload model.Upload
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&upload).Error
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepo) Latest(ctx context.Context) (*model.Upload, error) {
	var upload model.Upload
	err := r.db.WithContext(ctx).
		Order("id DESC").
		First(&upload).Error
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepo) ListRows(ctx context.Context, uploadID int64) ([]model.UploadRow, error) {
	var rows []model.UploadRow
	err := r.db.WithContext(ctx).
		Where("upload_id = ?", uploadID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
