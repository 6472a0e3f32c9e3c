package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day or timezone component.
// It marshals as "2006-01-02".
type Date struct {
	day time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a moment to the calendar day observed in its location.
func DateOf(value time.Time) Date {
	year, month, day := value.Date()
	return NewDate(year, month, day)
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOf(parsed), nil
}

func (d Date) Year() int           { return d.day.Year() }
func (d Date) Month() time.Month   { return d.day.Month() }
func (d Date) Day() int            { return d.day.Day() }
func (d Date) Weekday() time.Weekday { return d.day.Weekday() }
func (d Date) IsZero() bool        { return d.day.IsZero() }

func (d Date) AddDays(days int) Date {
	return Date{day: d.day.AddDate(0, 0, days)}
}

func (d Date) Before(other Date) bool { return d.day.Before(other.day) }
func (d Date) After(other Date) bool  { return d.day.After(other.day) }
func (d Date) Equal(other Date) bool  { return d.day.Equal(other.day) }

// Within reports whether the day falls inside the inclusive [from, to] range.
func (d Date) Within(from Date, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) String() string {
	return d.day.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
