package services

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError names the offending field. Validation never clamps and
// never partially mutates stored state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field string, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func validateRequiredText(field string, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(field, "must not be empty")
	}
	if len([]rune(value)) > maxLength {
		return newValidationError(field, fmt.Sprintf("must be %d characters or less", maxLength))
	}
	return nil
}

func validateOptionalText(field string, value string, maxLength int) error {
	if len([]rune(value)) > maxLength {
		return newValidationError(field, fmt.Sprintf("must be %d characters or less", maxLength))
	}
	return nil
}

const timeOfDayLayout = "15:04"

func parseTimeOfDay(field string, value string) (time.Time, error) {
	parsed, err := time.Parse(timeOfDayLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, newValidationError(field, "must be a valid HH:MM time")
	}
	return parsed, nil
}

func validateTimeWindow(fromValue string, toValue string) error {
	from, err := parseTimeOfDay("fromTime", fromValue)
	if err != nil {
		return err
	}
	to, err := parseTimeOfDay("toTime", toValue)
	if err != nil {
		return err
	}
	if !from.Before(to) {
		return newValidationError("toTime", "must be later than fromTime")
	}
	return nil
}

// activeRecords is the one place tombstones are filtered out of read paths.
func activeRecords[T interface{ Deleted() bool }](records []T) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if !record.Deleted() {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
