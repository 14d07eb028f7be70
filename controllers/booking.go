// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studiobook-backend/models"
	"studiobook-backend/store"
	"studiobook-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for creating a
// booking. End time, price and status are never accepted from the client.
type CreateBookingInput struct {
	ServiceID string    `json:"serviceId" binding:"required"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	StartTime time.Time `json:"startTime" binding:"required"`
	Notes     string    `json:"notes"`
}

// UpdateBookingStatusInput defines the JSON body for a status transition
type UpdateBookingStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// CreateBooking validates the request and inserts the booking. The store
// re-checks availability and overlap inside a transaction, so a slot taken
// between slot generation and submission is rejected here rather than
// double-booked.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, utils.BindingErrors(err))
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "serviceId", Message: "Invalid service ID format"},
		})
		return
	}

	booking, err := Store.CreateBooking(c.Request.Context(), store.CreateBookingInput{
		ServiceID: serviceID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		StartTime: input.StartTime,
		Notes:     input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrServiceNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		case errors.Is(err, store.ErrOutsideAvailability):
			utils.RespondWithError(c, http.StatusBadRequest, "Selected time is outside availability hours")
		case errors.Is(err, store.ErrSlotConflict):
			utils.RespondWithError(c, http.StatusConflict, "Selected time is no longer available")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetBookings lists bookings for a customer email or for a date range,
// optionally narrowed to one service
func GetBookings(c *gin.Context) {
	email := c.Query("email")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	filter := store.BookingFilter{Email: email}

	if serviceID := c.Query("serviceId"); serviceID != "" {
		id, err := uuid.Parse(serviceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		filter.ServiceID = id
	}

	if email == "" {
		if startDate == "" || endDate == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Email or date range required")
			return
		}
		start, err := parseDate(startDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		end, err := parseDate(endDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		filter.StartDate = start
		filter.EndDate = end
	}

	bookings, err := Store.ListBookings(c.Request.Context(), filter)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus moves a booking between pending, confirmed and
// cancelled (admin operation)
func UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	booking, err := Store.UpdateBookingStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"booking": booking,
	})
}

// parseDate accepts a plain calendar date or a full timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
