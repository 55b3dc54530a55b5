package entity

import (
	"time"
)

// Judge is the scoring-panel profile behind a judge user account.
// Event assignments restrict which events the judge may score.
type Judge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Events    []Event   `gorm:"many2many:judge_event_assignments" json:"events,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Judge) TableName() string {
	return "judges"
}
