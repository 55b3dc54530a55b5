package repository

import (
	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// TeamScoreTotal is the sum of approved judge scores for one team in an
// event. Used only for the points reversal on event deletion; medals are
// untouched because the judge ledger has no position concept.
type TeamScoreTotal struct {
	TeamID uint
	Total  int
}

// ScoreRepository defines data access for the judge scoring ledger.
type ScoreRepository interface {
	Create(score *entity.Score) error
	GetByID(id uint) (*entity.Score, error)
	UpdateStatus(id uint, status string) error
	ListByEvent(eventID uint) ([]entity.Score, error)
	ListByStatus(status string, limit, offset int) ([]entity.Score, int64, error)

	// SumApprovedByTeam sums approved score totals per team for an event.
	SumApprovedByTeam(eventID uint) ([]TeamScoreTotal, error)

	// DeleteByEvent removes the event's scores within tx. Normally the
	// store's cascade handles this; kept for the recount tool.
	DeleteByEvent(tx *gorm.DB, eventID uint) error
}
