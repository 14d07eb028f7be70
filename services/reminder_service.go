// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"studiobook-backend/models"
	"studiobook-backend/utils"
)

// ReminderService sends an SMS the day before each confirmed booking.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendUpcomingReminders(time.Now())
	})

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// SendUpcomingReminders messages every customer with a confirmed booking on
// the day after now. Failures are logged and skipped; one bad number never
// blocks the rest of the batch.
func (s *ReminderService) SendUpcomingReminders(now time.Time) {
	log.Println("Starting booking reminder processing...")

	tomorrow := utils.BeginningOfDay(now).Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("status = ?", models.BookingStatusConfirmed).
		Where("start_time >= ? AND start_time <= ?", tomorrow, utils.EndOfDay(tomorrow)).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		log.Printf("Failed to fetch upcoming bookings: %v", err)
		return
	}

	sent := 0
	for _, booking := range bookings {
		if booking.Phone == "" {
			continue
		}
		if err := s.sendReminder(booking); err != nil {
			log.Printf("Booking %s: failed to send reminder: %v", booking.ID, err)
			continue
		}
		sent++
	}

	log.Printf("Booking reminder processing completed: %d sent", sent)
}

func (s *ReminderService) sendReminder(booking models.Booking) error {
	body := fmt.Sprintf(
		"Hi %s, a reminder about your %s booking tomorrow at %s. See you there!",
		booking.FirstName,
		booking.Service.Name,
		booking.StartTime.Format("15:04"),
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(booking.Phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
