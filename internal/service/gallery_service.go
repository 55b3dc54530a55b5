package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// GalleryService manages the public photo gallery metadata.
type GalleryService struct {
	galleryRepo repository.GalleryRepository
	eventRepo   repository.EventRepository
}

// NewGalleryService creates a new gallery service
func NewGalleryService(galleryRepo repository.GalleryRepository, eventRepo repository.EventRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo, eventRepo: eventRepo}
}

// Add registers an uploaded image. The optional event reference must exist.
func (s *GalleryService) Add(caption, url string, eventID *uint) (*entity.GalleryImage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: image url is required", apperrors.ErrValidation)
	}
	if eventID != nil {
		if _, err := s.eventRepo.GetByID(*eventID); err != nil {
			return nil, fmt.Errorf("event #%d: %w", *eventID, err)
		}
	}

	image := &entity.GalleryImage{
		Caption:   strings.TrimSpace(caption),
		URL:       strings.TrimSpace(url),
		ObjectKey: uuid.NewString(),
		EventID:   eventID,
	}
	if err := s.galleryRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes an image from the gallery
func (s *GalleryService) Delete(imageID uint) error {
	if err := s.galleryRepo.Delete(imageID); err != nil {
		return fmt.Errorf("gallery image #%d: %w", imageID, err)
	}
	return nil
}

// List returns gallery images newest first
func (s *GalleryService) List(limit, offset int) ([]entity.GalleryImage, int64, error) {
	return s.galleryRepo.List(limit, offset)
}
