package repository

import (
	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// EventFilters narrows event listings. Zero values mean "no filter".
type EventFilters struct {
	Category string
	Status   string
}

// EventRepository defines data access for events and their score criteria.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id uint) (*entity.Event, error)
	Update(event *entity.Event) error
	List(filters EventFilters, limit, offset int) ([]entity.Event, int64, error)

	// MarkCompleted sets the event status to completed within tx. The write
	// is unconditional: recording a result always completes the event, even
	// if it already was.
	MarkCompleted(tx *gorm.DB, eventID uint) error

	// Delete removes the event row within tx. Results, scores and criteria
	// referencing it are removed by the store's ON DELETE CASCADE, not by
	// application code.
	Delete(tx *gorm.DB, eventID uint) error

	AddCriteria(eventID uint, criteria []entity.ScoreCriterion) error
	ListCriteria(eventID uint) ([]entity.ScoreCriterion, error)
}
