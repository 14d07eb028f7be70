// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a single per-field validation failure, rendered inline next
// to the offending field by the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateEmail checks the address has an RFC-shaped local@domain.tld form.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateCustomerDetails validates the booking wizard's details step.
// First name, last name and email are required; phone and notes are optional.
func ValidateCustomerDetails(firstName, lastName, email string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if strings.TrimSpace(email) == "" || !ValidateEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	return errs
}
