package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if an integer is non-negative
func ValidateNonNegative(value int, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateDateOnly checks that a field parses as a YYYY-MM-DD calendar date
func ValidateDateOnly(value, fieldName string) error {
	if _, ok := ParseDateOnly(value); !ok {
		return NewValidationError(fmt.Sprintf("%s must be a valid YYYY-MM-DD date", fieldName))
	}
	return nil
}

// ValidateDateRange checks that end does not precede start
func ValidateDateRange(start, end string) error {
	diff, ok := DiffDays(start, end)
	if !ok {
		return NewValidationError("startDate and endDate must be valid YYYY-MM-DD dates")
	}
	if diff < 0 {
		return NewValidationError(ErrInvalidDateRange)
	}
	return nil
}
