package entity

import (
	"time"
)

// GalleryImage is a photo in the public fest gallery. ObjectKey is the
// storage key under which the image binary lives; the API only tracks
// metadata.
type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Caption   string    `gorm:"size:200;not null;default:''" json:"caption"`
	URL       string    `gorm:"size:255;not null" json:"url"`
	ObjectKey string    `gorm:"size:64;not null;uniqueIndex" json:"object_key"`
	EventID   *uint     `gorm:"index" json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName defines the table name for GORM
func (GalleryImage) TableName() string {
	return "gallery_images"
}
