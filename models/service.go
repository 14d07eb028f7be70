package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable studio space. Services are seeded once and stay
// read-only afterwards except for the IsActive flag.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // in minutes
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`

	Availability []Availability `gorm:"foreignKey:ServiceID" json:"-"`
	Bookings     []Booking      `gorm:"foreignKey:ServiceID" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
