// controllers/slot.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studiobook-backend/config"
	"studiobook-backend/services"
	"studiobook-backend/store"
	"studiobook-backend/utils"
)

// GetSlots computes the bookable time slots for a service on one calendar
// day. Past-slot suppression uses the server clock, so clients get correct
// results regardless of their own clock.
func GetSlots(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	ctx := c.Request.Context()

	service, err := Store.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	windows, err := Store.ListAvailability(ctx, serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	bookings, err := Store.ListBookings(ctx, store.BookingFilter{
		StartDate: date,
		EndDate:   date,
		ServiceID: serviceID,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	slots := services.GenerateSlots(service, date, windows, bookings, time.Now(), config.SlotWindowMode())
	if slots == nil {
		slots = []services.TimeSlot{}
	}

	c.JSON(http.StatusOK, slots)
}
