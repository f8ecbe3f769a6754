package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Click rows are written once per visit to a tracked link and never updated.
type Click struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	TrackableURLID string    `json:"trackableUrlId" gorm:"index;not null"`
	IPAddress      *string   `json:"ipAddress"`
	UserAgent      *string   `json:"userAgent"`
	ClickedAt      time.Time `json:"clickedAt"`
}

func (c *Click) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ClickedAt.IsZero() {
		c.ClickedAt = time.Now()
	}
	return nil
}
