package repository

import (
	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// JudgeRepository defines data access for judge profiles and their event
// assignments.
type JudgeRepository interface {
	Create(judge *entity.Judge) error
	GetByID(id uint) (*entity.Judge, error)
	GetByUserID(userID uint) (*entity.Judge, error)
	List() ([]entity.Judge, error)
	Delete(id uint) error

	ReplaceAssignments(judgeID uint, eventIDs []uint) error
	ListAssignedEvents(judgeID uint) ([]entity.Event, error)
	IsAssigned(judgeID, eventID uint) (bool, error)
}
