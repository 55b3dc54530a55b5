package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// EventRepo implements repository.EventRepository
type EventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create persists a new event
func (r *EventRepo) Create(event *entity.Event) error {
	return r.db.Create(event).Error
}

// GetByID returns an event by its ID
func (r *EventRepo) GetByID(id uint) (*entity.Event, error) {
	var event entity.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Update saves changes to an event
func (r *EventRepo) Update(event *entity.Event) error {
	return r.db.Save(event).Error
}

// List returns events matching the filters with total count
func (r *EventRepo) List(filters repository.EventFilters, limit, offset int) ([]entity.Event, int64, error) {
	var events []entity.Event
	var total int64

	query := r.db.Model(&entity.Event{})
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// MarkCompleted sets the event status to completed within the given
// transaction. Unconditional: recording the fifth result writes the same
// status as recording the first.
func (r *EventRepo) MarkCompleted(tx *gorm.DB, eventID uint) error {
	result := tx.Model(&entity.Event{}).
		Where("id = ?", eventID).
		Update("status", entity.EventStatusCompleted)
	if result.Error != nil {
		return fmt.Errorf("mark event #%d completed failed: %w", eventID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes the event row. Dependent rows go with it via the schema's
// ON DELETE CASCADE.
func (r *EventRepo) Delete(tx *gorm.DB, eventID uint) error {
	result := tx.Delete(&entity.Event{}, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddCriteria attaches scoring criteria to an event
func (r *EventRepo) AddCriteria(eventID uint, criteria []entity.ScoreCriterion) error {
	for i := range criteria {
		criteria[i].EventID = eventID
	}
	return r.db.Create(&criteria).Error
}

// ListCriteria returns the scoring criteria configured on an event
func (r *EventRepo) ListCriteria(eventID uint) ([]entity.ScoreCriterion, error) {
	var criteria []entity.ScoreCriterion
	err := r.db.Where("event_id = ?", eventID).Order("id ASC").Find(&criteria).Error
	return criteria, err
}
