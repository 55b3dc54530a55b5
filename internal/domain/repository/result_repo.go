package repository

import (
	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// TeamReversal is the net aggregate contribution of one team's results in
// an event, used to undo standings in a single update per team when the
// event is deleted.
type TeamReversal struct {
	TeamID uint
	Points int
	Gold   int
	Silver int
	Bronze int
}

// Delta converts the reversal into the (positive) aggregate delta the
// results originally contributed.
func (r TeamReversal) Delta() AggregateDelta {
	return AggregateDelta{Points: r.Points, Gold: r.Gold, Silver: r.Silver, Bronze: r.Bronze}
}

// ResultRepository defines data access for recorded placements.
type ResultRepository interface {
	Create(tx *gorm.DB, result *entity.Result) error
	GetByID(id uint) (*entity.Result, error)
	Delete(tx *gorm.DB, id uint) error
	ListByEvent(eventID uint) ([]entity.Result, error)
	ListByTeam(teamID uint, limit, offset int) ([]entity.Result, error)

	// AggregateByTeam groups the event's results by team and sums points and
	// medal counts, so cascade deletion applies one reversal per team.
	AggregateByTeam(eventID uint) ([]TeamReversal, error)
}
