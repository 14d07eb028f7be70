package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studiobook-backend/models"
	"studiobook-backend/utils"
)

// GormStore backs the Store interface with a relational database. Booking
// creation runs inside a transaction so the non-overlap invariant holds at
// insert time, not just at slot-generation time.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at").
		Find(&services).Error
	return services, err
}

func (s *GormStore) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).First(&service, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) ListAvailability(ctx context.Context, serviceID uuid.UUID) ([]models.Availability, error) {
	var windows []models.Availability
	err := s.db.WithContext(ctx).
		Where("service_id = ? AND is_active = ?", serviceID, true).
		Order("day_of_week, start_time").
		Find(&windows).Error
	return windows, err
}

func (s *GormStore) ListBookings(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	} else {
		q = q.Where("start_time >= ? AND start_time <= ?",
			utils.BeginningOfDay(filter.StartDate), utils.EndOfDay(filter.EndDate))
	}
	if filter.ServiceID != uuid.Nil {
		q = q.Where("service_id = ?", filter.ServiceID)
	}

	var bookings []models.Booking
	err := q.Order("start_time").Find(&bookings).Error
	return bookings, err
}

func (s *GormStore) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	var booking *models.Booking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service models.Service
		err := tx.First(&service, "id = ? AND is_active = ?", in.ServiceID, true).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		if err != nil {
			return err
		}

		start := in.StartTime
		end := start.Add(time.Duration(service.Duration) * time.Minute)

		contained, err := slotWithinAvailability(tx, service.ID, start, end)
		if err != nil {
			return err
		}
		if !contained {
			return ErrOutsideAvailability
		}

		// Half-open overlap test: touching endpoints do not conflict.
		var conflicts int64
		err = tx.Model(&models.Booking{}).
			Where("service_id = ? AND status <> ?", service.ID, models.BookingStatusCancelled).
			Where("start_time < ? AND end_time > ?", end, start).
			Count(&conflicts).Error
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrSlotConflict
		}

		booking = &models.Booking{
			ServiceID:  service.ID,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Phone:      in.Phone,
			StartTime:  start,
			EndTime:    end,
			Status:     models.BookingStatusPending,
			Notes:      in.Notes,
			TotalPrice: service.Price,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// slotWithinAvailability checks [start, end) sits inside some active window
// for the service on start's weekday.
func slotWithinAvailability(tx *gorm.DB, serviceID uuid.UUID, start, end time.Time) (bool, error) {
	var windows []models.Availability
	err := tx.
		Where("service_id = ? AND day_of_week = ? AND is_active = ?",
			serviceID, int(start.Weekday()), true).
		Find(&windows).Error
	if err != nil {
		return false, err
	}

	for _, w := range windows {
		sh, sm, err := utils.ParseClock(w.StartTime)
		if err != nil {
			return false, err
		}
		eh, em, err := utils.ParseClock(w.EndTime)
		if err != nil {
			return false, err
		}
		windowStart := utils.AtClock(start, sh, sm)
		windowEnd := utils.AtClock(start, eh, em)
		if !start.Before(windowStart) && !end.After(windowEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (s *GormStore) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	booking.Status = status
	if err := s.db.WithContext(ctx).Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	return s.db.WithContext(ctx).Create(contact).Error
}

func (s *GormStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&contacts).Error
	return contacts, err
}

func (s *GormStore) SeedServices(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, svc := range initialServices() {
			service := svc
			if err := tx.Create(&service).Error; err != nil {
				return fmt.Errorf("seed service %s: %w", service.Slug, err)
			}
			// Default hours: Monday through Friday, 09:00-18:00.
			for day := 1; day <= 5; day++ {
				window := models.Availability{
					ServiceID: service.ID,
					DayOfWeek: day,
					StartTime: "09:00",
					EndTime:   "18:00",
					IsActive:  true,
				}
				if err := tx.Create(&window).Error; err != nil {
					return fmt.Errorf("seed availability for %s: %w", service.Slug, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func initialServices() []models.Service {
	return []models.Service{
		{
			Name:        "Recording Studio",
			Slug:        "recording-studio",
			Description: "Professional recording space with industry-standard equipment including Neve 1073DPX, Tube-Tech CL 1B, SSL Sigma, U87, and Focal Trio6 monitors.",
			Duration:    120,
			Price:       "150.00",
			IsActive:    true,
		},
		{
			Name:        "Podcast Studio",
			Slug:        "podcast-studio",
			Description: "Multi-camera podcast setup with SM7B microphones, RODECaster Pro, ATEM Mini Pro, and professional video recording capabilities.",
			Duration:    90,
			Price:       "100.00",
			IsActive:    true,
		},
		{
			Name:        "Photography Studio",
			Slug:        "photography-studio",
			Description: "Spacious 3m x 7.5m cyclorama studio with professional lighting options and Epson projector for creative visual projects.",
			Duration:    180,
			Price:       "200.00",
			IsActive:    true,
		},
		{
			Name:        "Creative Lounge",
			Slug:        "creative-lounge",
			Description: "Open, relaxed space for rehearsals, writing, workshops, intimate events, and creative collaboration with PIONEER XDJ-XZ and full sound system.",
			Duration:    240,
			Price:       "250.00",
			IsActive:    true,
		},
	}
}
