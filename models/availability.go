package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is a recurring weekly open window for a service.
// StartTime/EndTime are local "HH:MM" strings, not timestamps; DayOfWeek
// follows time.Weekday numbering (0 = Sunday).
type Availability struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	DayOfWeek int       `gorm:"not null" json:"dayOfWeek"`
	StartTime string    `gorm:"not null" json:"startTime"`
	EndTime   string    `gorm:"not null" json:"endTime"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
