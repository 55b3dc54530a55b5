package entity

import (
	"time"
)

// Score status constants
const (
	ScoreStatusPending  = "pending"
	ScoreStatusApproved = "approved"
	ScoreStatusRejected = "rejected"
)

// ScoreCriterion is a judging criterion configured on an event, with the
// maximum points a judge may award for it.
type ScoreCriterion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	MaxPoints int       `gorm:"not null" json:"max_points"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName defines the table name for GORM
func (ScoreCriterion) TableName() string {
	return "score_criteria"
}

// Score is one judge's criteria-based evaluation of a team in an event.
// It is an independent ledger from Result: approving a score never updates
// team standings. The only place the two meet is event deletion, where
// approved scores are reverted against total_points.
type Score struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	EventID    uint             `gorm:"not null;index;uniqueIndex:idx_judge_event_team" json:"event_id"`
	TeamID     uint             `gorm:"not null;index;uniqueIndex:idx_judge_event_team" json:"team_id"`
	JudgeID    uint             `gorm:"not null;index;uniqueIndex:idx_judge_event_team" json:"judge_id"`
	TotalScore int              `gorm:"not null;default:0" json:"total_score"`
	Status     string           `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Comments   string           `gorm:"size:500;not null;default:''" json:"comments"`
	Details    []CriterionScore `gorm:"foreignKey:ScoreID" json:"details,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Score) TableName() string {
	return "scores"
}

// IsPending reports whether the score still awaits an admin decision.
func (s *Score) IsPending() bool {
	return s.Status == ScoreStatusPending
}

// CriterionScore holds the points a judge awarded for a single criterion.
type CriterionScore struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ScoreID     uint `gorm:"not null;index" json:"score_id"`
	CriterionID uint `gorm:"not null" json:"criterion_id"`
	Points      int  `gorm:"not null" json:"points"`
}

// TableName defines the table name for GORM
func (CriterionScore) TableName() string {
	return "criterion_scores"
}
