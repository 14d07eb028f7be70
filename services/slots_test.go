package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobook-backend/config"
	"studiobook-backend/models"
	"studiobook-backend/utils"
)

func testService(duration int) *models.Service {
	return &models.Service{
		ID:       uuid.New(),
		Name:     "Recording Studio",
		Slug:     "recording-studio",
		Duration: duration,
		Price:    "150.00",
		IsActive: true,
	}
}

func window(serviceID uuid.UUID, date time.Time, start, end string) models.Availability {
	return models.Availability{
		ID:        uuid.New(),
		ServiceID: serviceID,
		DayOfWeek: int(date.Weekday()),
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

func booking(serviceID uuid.UUID, date time.Time, startHour, startMinute, durationMin int, status models.BookingStatus) models.Booking {
	start := utils.AtClock(date, startHour, startMinute)
	return models.Booking{
		ID:        uuid.New(),
		ServiceID: serviceID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durationMin) * time.Minute),
		Status:    status,
	}
}

// A date far enough ahead that "now" never suppresses its slots.
func futureDate() time.Time {
	return utils.BeginningOfDay(time.Now().AddDate(1, 0, 0))
}

func slotTimes(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func availableByTime(slots []TimeSlot) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Time] = s.Available
	}
	return out
}

func TestGenerateSlots_NoWindowForWeekday(t *testing.T) {
	svc := testService(60)
	date := futureDate()

	otherDay := window(svc.ID, date.AddDate(0, 0, 1), "09:00", "18:00")

	slots := GenerateSlots(svc, date, []models.Availability{otherDay}, nil, time.Now(), config.WindowsIndependent)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NilInputs(t *testing.T) {
	date := futureDate()
	assert.Empty(t, GenerateSlots(nil, date, nil, nil, time.Now(), config.WindowsIndependent))
	assert.Empty(t, GenerateSlots(testService(60), time.Time{}, nil, nil, time.Now(), config.WindowsIndependent))
}

func TestGenerateSlots_GridAndWindowFit(t *testing.T) {
	svc := testService(120)
	date := futureDate()
	windows := []models.Availability{window(svc.ID, date, "09:00", "18:00")}

	slots := GenerateSlots(svc, date, windows, nil, time.Now(), config.WindowsIndependent)
	require.NotEmpty(t, slots)

	times := slotTimes(slots)
	assert.Equal(t, "09:00", times[0])
	// Duration 120 in a window ending 18:00: the last valid start is 16:00.
	assert.Equal(t, "16:00", times[len(times)-1])
	assert.NotContains(t, times, "16:30")

	// Strictly ascending on a 30-minute grid.
	for i := 1; i < len(slots); i++ {
		prevH, prevM, err := utils.ParseClock(times[i-1])
		require.NoError(t, err)
		curH, curM, err := utils.ParseClock(times[i])
		require.NoError(t, err)
		assert.Equal(t, 30, (curH*60+curM)-(prevH*60+prevM))
	}

	// Every slot fits the full duration inside the window.
	for _, s := range slots {
		h, m, err := utils.ParseClock(s.Time)
		require.NoError(t, err)
		end := utils.AtClock(date, h, m).Add(120 * time.Minute)
		assert.False(t, end.After(utils.AtClock(date, 18, 0)), "slot %s exceeds window", s.Time)
	}
}

func TestGenerateSlots_WindowStartingOnHalfHour(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	windows := []models.Availability{window(svc.ID, date, "09:30", "12:00")}

	slots := GenerateSlots(svc, date, windows, nil, time.Now(), config.WindowsIndependent)
	assert.Equal(t, []string{"09:30", "10:00", "10:30", "11:00"}, slotTimes(slots))
}

func TestGenerateSlots_PastSlotSuppression(t *testing.T) {
	svc := testService(60)
	date := utils.BeginningOfDay(time.Now())
	windows := []models.Availability{window(svc.ID, date, "09:00", "18:00")}
	now := utils.AtClock(date, 12, 15)

	slots := GenerateSlots(svc, date, windows, nil, now, config.WindowsIndependent)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		h, m, err := utils.ParseClock(s.Time)
		require.NoError(t, err)
		start := utils.AtClock(date, h, m)
		if !start.After(now) {
			assert.False(t, s.Available, "past slot %s should be unavailable", s.Time)
		} else {
			assert.True(t, s.Available, "future slot %s should be available", s.Time)
		}
	}
}

func TestGenerateSlots_NoSuppressionOnOtherDays(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	windows := []models.Availability{window(svc.ID, date, "09:00", "18:00")}

	// A "now" late in the evening of a different day.
	now := utils.AtClock(time.Now(), 23, 0)

	slots := GenerateSlots(svc, date, windows, nil, now, config.WindowsIndependent)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_HalfOpenOverlap(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	windows := []models.Availability{window(svc.ID, date, "09:00", "18:00")}
	bookings := []models.Booking{
		booking(svc.ID, date, 10, 0, 60, models.BookingStatusConfirmed), // [10:00, 11:00)
	}

	slots := GenerateSlots(svc, date, windows, bookings, time.Now(), config.WindowsIndependent)
	avail := availableByTime(slots)

	assert.True(t, avail["09:00"], "ends exactly at booking start, touching is fine")
	assert.False(t, avail["09:30"], "09:30-10:30 overlaps the booking")
	assert.False(t, avail["10:00"])
	assert.False(t, avail["10:30"])
	assert.True(t, avail["11:00"], "starts exactly at booking end, touching is fine")
}

func TestGenerateSlots_CancelledBookingsIgnored(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	windows := []models.Availability{window(svc.ID, date, "09:00", "18:00")}
	bookings := []models.Booking{
		booking(svc.ID, date, 10, 0, 60, models.BookingStatusCancelled),
	}

	slots := GenerateSlots(svc, date, windows, bookings, time.Now(), config.WindowsIndependent)
	avail := availableByTime(slots)
	assert.True(t, avail["10:00"])
}

func TestGenerateSlots_MultipleWindows(t *testing.T) {
	svc := testService(90)
	date := futureDate()
	// Touching windows: 09:00-10:00 and 10:00-12:00.
	windows := []models.Availability{
		window(svc.ID, date, "09:00", "10:00"),
		window(svc.ID, date, "10:00", "12:00"),
	}

	t.Run("independent", func(t *testing.T) {
		slots := GenerateSlots(svc, date, windows, nil, time.Now(), config.WindowsIndependent)
		// 90 minutes never fits the first window; only the second yields slots.
		assert.Equal(t, []string{"10:00", "10:30"}, slotTimes(slots))
	})

	t.Run("merged", func(t *testing.T) {
		slots := GenerateSlots(svc, date, windows, nil, time.Now(), config.WindowsMerged)
		// Merged into 09:00-12:00, the earlier starts fit too.
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotTimes(slots))
	})
}

func TestGenerateSlots_OverlappingWindowsDeduped(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	windows := []models.Availability{
		window(svc.ID, date, "09:00", "12:00"),
		window(svc.ID, date, "11:00", "14:00"),
	}

	slots := GenerateSlots(svc, date, windows, nil, time.Now(), config.WindowsIndependent)
	times := slotTimes(slots)

	seen := make(map[string]bool)
	for _, tm := range times {
		assert.False(t, seen[tm], "duplicate slot %s", tm)
		seen[tm] = true
	}
	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00",
	}, times)
}

func TestGenerateSlots_WindowsOfOtherServicesIgnored(t *testing.T) {
	svc := testService(60)
	date := futureDate()
	other := window(uuid.New(), date, "09:00", "18:00")

	slots := GenerateSlots(svc, date, []models.Availability{other}, nil, time.Now(), config.WindowsIndependent)
	assert.Empty(t, slots)
}
