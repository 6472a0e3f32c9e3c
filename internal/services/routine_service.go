package services

import (
	"sort"

	"github.com/stridehq/stride/internal/models"
)

const (
	maxRoutineNameLength     = 60
	maxMeasurementTypeLength = 30
)

type RoutineStore interface {
	All() ([]models.Routine, error)
	Upsert(routine *models.Routine) error
}

type RoutineLogStore interface {
	All() ([]models.RoutineLog, error)
	Upsert(entry *models.RoutineLog) error
}

type RoutineService struct {
	routines RoutineStore
	logs     RoutineLogStore
}

func NewRoutineService(routines RoutineStore, logs RoutineLogStore) *RoutineService {
	return &RoutineService{routines: routines, logs: logs}
}

// Routines returns active routines sorted by name.
func (service *RoutineService) Routines() ([]models.Routine, error) {
	all, err := service.routines.All()
	if err != nil {
		return nil, err
	}
	routines := activeRecords(all)
	sort.SliceStable(routines, func(i, j int) bool {
		return routines[i].Name < routines[j].Name
	})
	return routines, nil
}

func (service *RoutineService) SaveRoutine(routine *models.Routine) error {
	if err := validateRequiredText("name", routine.Name, maxRoutineNameLength); err != nil {
		return err
	}
	if err := validateRequiredText("measurementType", routine.MeasurementType, maxMeasurementTypeLength); err != nil {
		return err
	}
	if err := validateTimeWindow(routine.FromTime, routine.ToTime); err != nil {
		return err
	}
	if err := NormalizeRecurrence(&routine.Recurrence); err != nil {
		return err
	}

	ensureIdentity(&routine.Meta)
	return service.routines.Upsert(routine)
}

// LogsForRange returns the non-deleted logs dated inside [from, to].
func (service *RoutineService) LogsForRange(from models.Date, to models.Date) ([]models.RoutineLog, error) {
	all, err := service.logs.All()
	if err != nil {
		return nil, err
	}
	logs := make([]models.RoutineLog, 0, len(all))
	for _, entry := range all {
		if !entry.IsDeleted && entry.Date.Within(from, to) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

// SetStatus upserts the log for the (routine, date) pair by natural key:
// a second write to the same pair mutates the existing log, keeping at most
// one non-deleted log per pair.
func (service *RoutineService) SetStatus(routineID string, date models.Date, status string) error {
	if !models.IsRoutineStatus(status) {
		return newValidationError("status", "unknown routine status")
	}

	all, err := service.logs.All()
	if err != nil {
		return err
	}

	var entry *models.RoutineLog
	for index := range all {
		candidate := &all[index]
		if candidate.RoutineID == routineID && candidate.Date.Equal(date) && !candidate.IsDeleted {
			entry = candidate
			break
		}
	}
	if entry == nil {
		entry = &models.RoutineLog{RoutineID: routineID, Date: date}
		ensureIdentity(&entry.Meta)
	}

	entry.Status = status
	return service.logs.Upsert(entry)
}

// PendingCount counts routines due on the date whose log is absent or still
// at the default status.
func (service *RoutineService) PendingCount(date models.Date) (int, error) {
	routines, err := service.Routines()
	if err != nil {
		return 0, err
	}
	logs, err := service.LogsForRange(date, date)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, routine := range routines {
		if !IsScheduledOn(routine.Recurrence, date) {
			continue
		}
		pending := true
		for _, entry := range logs {
			if entry.RoutineID == routine.ID {
				pending = entry.Status == models.StatusDefault
				break
			}
		}
		if pending {
			count++
		}
	}
	return count, nil
}
