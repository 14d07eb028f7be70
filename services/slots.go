package services

import (
	"fmt"
	"sort"
	"time"

	"studiobook-backend/config"
	"studiobook-backend/models"
	"studiobook-backend/utils"
)

// TimeSlot is a candidate bookable start time for one service and date.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots computes the bookable 30-minute-grid slots for a service on
// a calendar day. It is a pure function: the caller supplies the service's
// availability windows, the bookings already overlapping that day, and the
// reference clock used for past-slot suppression.
//
// A slot is emitted only when the full service duration fits inside the
// window; it is marked unavailable when it has already started (today only)
// or when it overlaps a pending/confirmed booking. Overlap is half-open:
// a slot ending exactly when a booking starts does not conflict.
func GenerateSlots(
	service *models.Service,
	date time.Time,
	windows []models.Availability,
	bookings []models.Booking,
	now time.Time,
	mode config.WindowMode,
) []TimeSlot {
	if service == nil || date.IsZero() {
		return nil
	}

	dayWindows := windowsForDay(windows, service, date)
	if len(dayWindows) == 0 {
		return nil
	}

	spans := make([]clockSpan, 0, len(dayWindows))
	for _, w := range dayWindows {
		span, err := parseSpan(w)
		if err != nil {
			continue
		}
		spans = append(spans, span)
	}
	if mode == config.WindowsMerged {
		spans = mergeSpans(spans)
	}

	var slots []TimeSlot
	for _, span := range spans {
		slots = append(slots, enumerateSpan(span, service.Duration, date, bookings, now)...)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return dedupeSlots(slots)
}

// clockSpan is an open interval within one day, in minutes from midnight.
type clockSpan struct {
	start int
	end   int
}

func parseSpan(w models.Availability) (clockSpan, error) {
	sh, sm, err := utils.ParseClock(w.StartTime)
	if err != nil {
		return clockSpan{}, err
	}
	eh, em, err := utils.ParseClock(w.EndTime)
	if err != nil {
		return clockSpan{}, err
	}
	return clockSpan{start: sh*60 + sm, end: eh*60 + em}, nil
}

func windowsForDay(windows []models.Availability, service *models.Service, date time.Time) []models.Availability {
	day := int(date.Weekday())
	var out []models.Availability
	for _, w := range windows {
		if w.ServiceID == service.ID && w.DayOfWeek == day && w.IsActive {
			out = append(out, w)
		}
	}
	return out
}

// mergeSpans collapses overlapping or touching spans into single spans.
func mergeSpans(spans []clockSpan) []clockSpan {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := []clockSpan{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
		} else {
			merged = append(merged, s)
		}
	}
	return merged
}

func enumerateSpan(span clockSpan, duration int, date time.Time, bookings []models.Booking, now time.Time) []TimeSlot {
	startHour, startMinute := span.start/60, span.start%60
	endHour, endMinute := span.end/60, span.end%60

	var slots []TimeSlot
	for hour := startHour; hour < endHour || (hour == endHour && endMinute > 0); hour++ {
		for _, minute := range []int{0, 30} {
			if hour == startHour && minute < startMinute {
				continue
			}
			if hour == endHour && minute >= endMinute {
				break
			}

			slotStart := utils.AtClock(date, hour, minute)
			slotEnd := slotStart.Add(time.Duration(duration) * time.Minute)

			// The whole service duration must fit inside the window.
			if slotEnd.After(utils.AtClock(date, endHour, endMinute)) {
				continue
			}

			isPast := utils.SameDay(date, now) && !slotStart.After(now)

			slots = append(slots, TimeSlot{
				Time:      fmt.Sprintf("%02d:%02d", hour, minute),
				Available: !isPast && !hasConflict(slotStart, slotEnd, bookings),
			})
		}
	}
	return slots
}

// hasConflict reports whether [start, end) intersects any pending or
// confirmed booking under half-open interval semantics.
func hasConflict(start, end time.Time, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if start.Before(b.EndTime) && end.After(b.StartTime) {
			return true
		}
	}
	return false
}

// dedupeSlots drops duplicate start times produced by overlapping windows
// in independent mode; a start bookable through any window stays available.
func dedupeSlots(slots []TimeSlot) []TimeSlot {
	if len(slots) < 2 {
		return slots
	}
	out := slots[:1]
	for _, s := range slots[1:] {
		last := &out[len(out)-1]
		if s.Time == last.Time {
			last.Available = last.Available || s.Available
			continue
		}
		out = append(out, s)
	}
	return out
}
