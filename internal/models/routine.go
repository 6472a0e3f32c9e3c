package models

const (
	StatusDefault     = "default"
	StatusFollowed    = "followed"
	StatusNotFollowed = "not_followed"
	StatusIgnored     = "ignored"
)

type Routine struct {
	Meta
	Recurrence
	Name            string `json:"name"`
	MeasurementType string `json:"measurementType"`
	FromTime        string `json:"fromTime"`
	ToTime          string `json:"toTime"`
}

// RoutineLog records what happened with one routine on one calendar day.
// At most one non-deleted log exists per (RoutineID, Date) pair.
type RoutineLog struct {
	Meta
	RoutineID string `json:"routineId"`
	Date      Date   `json:"date"`
	Status    string `json:"status"`
}

func IsRoutineStatus(value string) bool {
	switch value {
	case StatusDefault, StatusFollowed, StatusNotFollowed, StatusIgnored:
		return true
	}
	return false
}
