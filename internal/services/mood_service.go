package services

import (
	"sort"

	"github.com/stridehq/stride/internal/models"
)

const maxMoodNotesLength = 400

type MoodLogStore interface {
	All() ([]models.MoodLog, error)
	Upsert(entry *models.MoodLog) error
}

type MoodService struct {
	logs MoodLogStore
}

func NewMoodService(logs MoodLogStore) *MoodService {
	return &MoodService{logs: logs}
}

// Logs returns active mood logs, most recent date first.
func (service *MoodService) Logs() ([]models.MoodLog, error) {
	all, err := service.logs.All()
	if err != nil {
		return nil, err
	}
	logs := activeRecords(all)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	return logs, nil
}

// SaveMood upserts the single log for the date: at most one active log per
// calendar day.
func (service *MoodService) SaveMood(date models.Date, scale int, notes string) error {
	if scale < 1 || scale > 5 {
		return newValidationError("scale", "must be from 1 to 5")
	}
	if err := validateOptionalText("notes", notes, maxMoodNotesLength); err != nil {
		return err
	}

	all, err := service.logs.All()
	if err != nil {
		return err
	}

	var entry *models.MoodLog
	for index := range all {
		candidate := &all[index]
		if candidate.Date.Equal(date) && !candidate.IsDeleted {
			entry = candidate
			break
		}
	}
	if entry == nil {
		entry = &models.MoodLog{Date: date}
		ensureIdentity(&entry.Meta)
	}

	entry.Scale = scale
	entry.Notes = notes
	return service.logs.Upsert(entry)
}
