// controllers/contact.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook-backend/models"
	"studiobook-backend/utils"
)

// CreateContactInput defines the expected JSON structure for the contact form
type CreateContactInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
}

// SubmitContact stores a contact form submission
func SubmitContact(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, utils.BindingErrors(err))
		return
	}

	contact := models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
	}

	if err := Store.CreateContact(c.Request.Context(), &contact); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      contact.ID,
	})
}

// GetContacts lists contact submissions (admin endpoint)
func GetContacts(c *gin.Context) {
	contacts, err := Store.ListContacts(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, contacts)
}
