package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewValidationError(ErrInvalidEmail)
	}
	return nil
}

// ValidateOneOf checks that a value is one of the allowed options
func ValidateOneOf(value, fieldName string, allowed ...string) error {
	for _, option := range allowed {
		if value == option {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(allowed, ", ")))
}
