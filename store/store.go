// Package store is the single persistence boundary for the booking API.
// Handlers and the booking flow talk to the Store interface only; the one
// concrete binding is the GORM store in gorm_store.go.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"studiobook-backend/models"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrOutsideAvailability means the requested slot does not sit inside
	// any active availability window for the service's weekday.
	ErrOutsideAvailability = errors.New("slot is outside availability hours")

	// ErrSlotConflict means a non-cancelled booking already occupies part of
	// the requested [start, end) interval.
	ErrSlotConflict = errors.New("slot is no longer available")
)

// BookingFilter selects bookings by customer email or by a day-granular
// date range, optionally narrowed to one service. Exactly one of Email or
// the StartDate/EndDate pair is expected.
type BookingFilter struct {
	Email     string
	StartDate time.Time
	EndDate   time.Time
	ServiceID uuid.UUID
}

// CreateBookingInput is what the client may supply when booking. EndTime,
// price and status are derived server-side.
type CreateBookingInput struct {
	ServiceID uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	StartTime time.Time
	Notes     string
}

type Store interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)

	ListAvailability(ctx context.Context, serviceID uuid.UUID) ([]models.Availability, error)

	ListBookings(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)

	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// SeedServices inserts the initial studio services and their default
	// weekday availability when the services table is empty. It reports
	// whether anything was inserted.
	SeedServices(ctx context.Context) (bool, error)
}
