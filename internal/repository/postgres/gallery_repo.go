package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// GalleryRepo implements repository.GalleryRepository
type GalleryRepo struct {
	db *gorm.DB
}

// NewGalleryRepo creates a new gallery repository
func NewGalleryRepo(db *gorm.DB) *GalleryRepo {
	return &GalleryRepo{db: db}
}

// Create persists a new gallery image
func (r *GalleryRepo) Create(image *entity.GalleryImage) error {
	return r.db.Create(image).Error
}

// GetByID returns a gallery image by its ID
func (r *GalleryRepo) GetByID(id uint) (*entity.GalleryImage, error) {
	var image entity.GalleryImage
	err := r.db.First(&image, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// Delete removes a gallery image
func (r *GalleryRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.GalleryImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns gallery images newest first with total count
func (r *GalleryRepo) List(limit, offset int) ([]entity.GalleryImage, int64, error) {
	var images []entity.GalleryImage
	var total int64

	if err := r.db.Model(&entity.GalleryImage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}

	return images, total, nil
}
