// utils/response.go
package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondWithError sends the standard failure envelope.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondWithValidationErrors sends a 400 with the itemized errors array.
func RespondWithValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(400, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

// BindingErrors converts a gin binding failure into per-field messages so
// request validation responds the same shape as flow validation.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "body"
	}
	// Struct field -> JSON field (ServiceID -> serviceId handled per-case below)
	switch name {
	case "ServiceID":
		return "serviceId"
	case "FirstName":
		return "firstName"
	case "LastName":
		return "lastName"
	case "StartTime":
		return "startTime"
	default:
		return lowerFirst(name)
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fieldName(fe) {
	case "serviceId":
		return "Service ID is required"
	case "firstName":
		return "First name is required"
	case "lastName":
		return "Last name is required"
	case "email":
		return "Please enter a valid email address"
	case "startTime":
		return "Please provide a valid date and time"
	case "message":
		return "Message is required"
	default:
		return "Invalid value"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
