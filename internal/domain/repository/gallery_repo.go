package repository

import (
	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// GalleryRepository defines data access for gallery images.
type GalleryRepository interface {
	Create(image *entity.GalleryImage) error
	GetByID(id uint) (*entity.GalleryImage, error)
	Delete(id uint) error
	List(limit, offset int) ([]entity.GalleryImage, int64, error)
}
