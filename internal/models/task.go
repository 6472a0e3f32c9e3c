package models

type Task struct {
	Meta
	Recurrence
	Name        string  `json:"name"`
	TargetHours float64 `json:"targetHours"`
}

// TaskLog records actual hours spent on one task on one calendar day.
// An ignored log is kept but excluded from performance ratios.
type TaskLog struct {
	Meta
	TaskID  string  `json:"taskId"`
	Date    Date    `json:"date"`
	Hours   float64 `json:"hours"`
	Ignored bool    `json:"ignored"`
}
