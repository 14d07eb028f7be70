package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation of a service slot. EndTime is always
// StartTime + service duration and TotalPrice is the service price at
// booking time; both are computed server-side, never taken from the client.
type Booking struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID  uuid.UUID     `gorm:"type:uuid;index;not null" json:"serviceId"`
	FirstName  string        `gorm:"not null" json:"firstName"`
	LastName   string        `gorm:"not null" json:"lastName"`
	Email      string        `gorm:"index;not null" json:"email"`
	Phone      string        `json:"phone,omitempty"`
	StartTime  time.Time     `gorm:"index;not null" json:"startTime"`
	EndTime    time.Time     `gorm:"not null" json:"endTime"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes      string        `json:"notes,omitempty"`
	TotalPrice string        `gorm:"type:decimal(10,2)" json:"totalPrice"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
