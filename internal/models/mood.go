package models

// MoodLog holds one 1-5 rating per calendar day, with optional notes.
type MoodLog struct {
	Meta
	Date  Date   `json:"date"`
	Scale int    `json:"scale"`
	Notes string `json:"notes"`
}
