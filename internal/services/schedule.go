package services

import (
	"time"

	"github.com/stridehq/stride/internal/models"
)

// IsScheduledOn is the sole authority for "is this routine or task due on
// this date". Pure with respect to stored state.
func IsScheduledOn(recurrence models.Recurrence, date models.Date) bool {
	if recurrence.ScheduleType == models.ScheduleDaily {
		return true
	}
	weekday := date.Weekday()
	for _, day := range recurrence.Days {
		if day == weekday {
			return true
		}
	}
	return false
}

// NormalizeRecurrence applies the save-side recurrence rules: a daily
// schedule stores all seven weekdays regardless of caller input; a
// specific-days schedule keeps the caller's days de-duplicated in order and
// must not end up empty.
func NormalizeRecurrence(recurrence *models.Recurrence) error {
	switch recurrence.ScheduleType {
	case models.ScheduleDaily:
		recurrence.Days = models.AllWeekdays()
		return nil
	case models.ScheduleSpecificDays:
		seen := make(map[time.Weekday]struct{}, len(recurrence.Days))
		deduped := make([]time.Weekday, 0, len(recurrence.Days))
		for _, day := range recurrence.Days {
			if day < time.Sunday || day > time.Saturday {
				return newValidationError("specificDays", "contains an invalid weekday")
			}
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			deduped = append(deduped, day)
		}
		if len(deduped) == 0 {
			return newValidationError("specificDays", "select at least one day")
		}
		recurrence.Days = deduped
		return nil
	default:
		return newValidationError("scheduleType", "must be daily or specific_days")
	}
}
