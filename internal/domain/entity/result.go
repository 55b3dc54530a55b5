package entity

import (
	"time"
)

// Result position constants
const (
	PositionFirst         = "1st"
	PositionSecond        = "2nd"
	PositionThird         = "3rd"
	PositionParticipation = "participation"
)

// Result represents a recorded placement of a team in an event. Points are
// resolved once at creation time and frozen; later changes to the points
// table never rewrite existing rows.
type Result struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EventID         uint      `gorm:"not null;index" json:"event_id"`
	TeamID          uint      `gorm:"not null;index" json:"team_id"`
	Position        string    `gorm:"size:20;not null" json:"position"`
	Points          int       `gorm:"not null;default:0" json:"points"`
	ParticipantName string    `gorm:"size:100;not null;default:''" json:"participant_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Result) TableName() string {
	return "results"
}

// MedalDelta returns the (gold, silver, bronze) increment for the result's
// position. Participation increments nothing.
func (r *Result) MedalDelta() (gold, silver, bronze int) {
	switch r.Position {
	case PositionFirst:
		return 1, 0, 0
	case PositionSecond:
		return 0, 1, 0
	case PositionThird:
		return 0, 0, 1
	}
	return 0, 0, 0
}
