// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook-backend/store"
	"studiobook-backend/utils"
)

// GetServices lists the active studio services
func GetServices(c *gin.Context) {
	services, err := Store.ListServices(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServiceBySlug retrieves a single service by its slug
func GetServiceBySlug(c *gin.Context) {
	service, err := Store.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}
