package entity

import (
	"time"
)

// Event category constants
const (
	EventCategoryArt    = "ART"
	EventCategorySports = "SPORTS"
)

// Event type constants. Only these three values are accepted at the API
// boundary; "group" and "team" share the group points table.
const (
	EventTypeIndividual = "individual"
	EventTypeGroup      = "group"
	EventTypeTeam       = "team"
)

// Event status constants
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

// Event represents a fest competition event
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500;not null;default:''" json:"description"`
	Category    string    `gorm:"size:10;not null;index" json:"category"`
	EventType   string    `gorm:"size:20;not null;default:'individual'" json:"event_type"`
	Venue       string    `gorm:"size:100;not null" json:"venue"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Status      string    `gorm:"size:20;not null;default:'upcoming';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Event) TableName() string {
	return "events"
}

// IsCompleted reports whether any result has been recorded for the event.
// Status never reverts automatically, even if all results are deleted.
func (e *Event) IsCompleted() bool {
	return e.Status == EventStatusCompleted
}

// ValidEventCategory reports whether c is a recognized category.
func ValidEventCategory(c string) bool {
	return c == EventCategoryArt || c == EventCategorySports
}

// ValidEventType reports whether t is one of the accepted event types.
func ValidEventType(t string) bool {
	return t == EventTypeIndividual || t == EventTypeGroup || t == EventTypeTeam
}
