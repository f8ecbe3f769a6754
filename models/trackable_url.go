package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackableURL struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	Clicks    []Click   `json:"clicks,omitempty" gorm:"foreignKey:TrackableURLID;constraint:OnDelete:CASCADE"`
}

func (u *TrackableURL) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
