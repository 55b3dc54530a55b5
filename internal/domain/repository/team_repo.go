package repository

import (
	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// AggregateDelta is a signed adjustment to a team's cached counters.
// Negative components are clamped at zero by the store.
type AggregateDelta struct {
	Points int
	Gold   int
	Silver int
	Bronze int
}

// Negate returns the reversing delta.
func (d AggregateDelta) Negate() AggregateDelta {
	return AggregateDelta{
		Points: -d.Points,
		Gold:   -d.Gold,
		Silver: -d.Silver,
		Bronze: -d.Bronze,
	}
}

// TeamRepository defines data access for teams and their standings counters.
type TeamRepository interface {
	Create(team *entity.Team) error
	GetByID(id uint) (*entity.Team, error)
	Update(team *entity.Team) error
	Delete(id uint) error
	List(limit, offset int) ([]entity.Team, int64, error)

	// ApplyAggregateDelta applies a signed counter adjustment as a single
	// atomic UPDATE within tx, clamped at zero. Callers never read-modify-
	// write the counters themselves; that pattern races under concurrent
	// result mutations.
	ApplyAggregateDelta(tx *gorm.DB, teamID uint, delta AggregateDelta) error

	// Leaderboard returns all teams ordered by total_points, then medals,
	// then name.
	Leaderboard() ([]entity.Team, error)
}
