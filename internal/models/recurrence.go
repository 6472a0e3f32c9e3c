package models

import "time"

const (
	ScheduleDaily        = "daily"
	ScheduleSpecificDays = "specific_days"
)

// Recurrence describes when a routine or task is due: every day, or only on
// a chosen set of weekdays. A daily schedule always stores all seven days.
type Recurrence struct {
	ScheduleType string         `json:"scheduleType"`
	Days         []time.Weekday `json:"specificDays"`
}

func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday,
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
	}
}
