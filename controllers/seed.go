// controllers/seed.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook-backend/utils"
)

// SeedServices initializes the studio services and their default weekday
// hours when the services table is empty. Safe to call repeatedly.
func SeedServices(c *gin.Context) {
	seeded, err := Store.SeedServices(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "Services already exist"
	if seeded {
		message = "Services seeded successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
