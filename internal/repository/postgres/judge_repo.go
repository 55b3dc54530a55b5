package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// JudgeRepo implements repository.JudgeRepository
type JudgeRepo struct {
	db *gorm.DB
}

// NewJudgeRepo creates a new judge repository
func NewJudgeRepo(db *gorm.DB) *JudgeRepo {
	return &JudgeRepo{db: db}
}

// Create persists a new judge profile
func (r *JudgeRepo) Create(judge *entity.Judge) error {
	return r.db.Create(judge).Error
}

// GetByID returns a judge with assigned events
func (r *JudgeRepo) GetByID(id uint) (*entity.Judge, error) {
	var judge entity.Judge
	err := r.db.Preload("Events").First(&judge, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &judge, nil
}

// GetByUserID returns the judge profile behind a user account
func (r *JudgeRepo) GetByUserID(userID uint) (*entity.Judge, error) {
	var judge entity.Judge
	err := r.db.Where("user_id = ?", userID).First(&judge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &judge, nil
}

// List returns all judges with their assignments
func (r *JudgeRepo) List() ([]entity.Judge, error) {
	var judges []entity.Judge
	err := r.db.Preload("Events").Order("name ASC").Find(&judges).Error
	return judges, err
}

// Delete removes a judge profile
func (r *JudgeRepo) Delete(id uint) error {
	result := r.db.Select("Events").Delete(&entity.Judge{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceAssignments overwrites the judge's event assignments
func (r *JudgeRepo) ReplaceAssignments(judgeID uint, eventIDs []uint) error {
	judge := entity.Judge{ID: judgeID}

	events := make([]entity.Event, 0, len(eventIDs))
	for _, id := range eventIDs {
		events = append(events, entity.Event{ID: id})
	}

	return r.db.Model(&judge).Association("Events").Replace(events)
}

// ListAssignedEvents returns the events a judge may score
func (r *JudgeRepo) ListAssignedEvents(judgeID uint) ([]entity.Event, error) {
	var judge entity.Judge
	err := r.db.Preload("Events").First(&judge, judgeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return judge.Events, nil
}

// IsAssigned reports whether the judge is assigned to the event
func (r *JudgeRepo) IsAssigned(judgeID, eventID uint) (bool, error) {
	var count int64
	err := r.db.Table("judge_event_assignments").
		Where("judge_id = ? AND event_id = ?", judgeID, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
