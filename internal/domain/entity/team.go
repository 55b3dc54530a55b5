package entity

import (
	"time"
)

// Team represents a competing team. The aggregate counters are a derived
// cache over the team's results; they are only ever mutated through atomic
// deltas at the store level (see TeamRepository.ApplyAggregateDelta) and
// rebuilt from scratch by cmd/recount.
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	TotalPoints int       `gorm:"not null;default:0;index:idx_teams_standings" json:"total_points"`
	Gold        int       `gorm:"not null;default:0" json:"gold"`
	Silver      int       `gorm:"not null;default:0" json:"silver"`
	Bronze      int       `gorm:"not null;default:0" json:"bronze"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Team) TableName() string {
	return "teams"
}
