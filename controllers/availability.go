// controllers/availability.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studiobook-backend/utils"
)

// GetAvailability lists the active weekly availability windows for a service
func GetAvailability(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	windows, err := Store.ListAvailability(c.Request.Context(), serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, windows)
}
