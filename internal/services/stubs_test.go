package services

import (
	"fmt"

	"github.com/stridehq/stride/internal/models"
)

// In-memory stand-ins for the store collections. Upsert replaces by id, the
// way the real store does.

type stubRoutineStore struct {
	routines []models.Routine
	err      error
}

func (s *stubRoutineStore) All() ([]models.Routine, error) {
	return append([]models.Routine(nil), s.routines...), s.err
}

func (s *stubRoutineStore) Upsert(routine *models.Routine) error {
	if s.err != nil {
		return s.err
	}
	s.routines = replaceByID(s.routines, *routine, routine.ID)
	return nil
}

type stubRoutineLogStore struct {
	logs []models.RoutineLog
	err  error
}

func (s *stubRoutineLogStore) All() ([]models.RoutineLog, error) {
	return append([]models.RoutineLog(nil), s.logs...), s.err
}

func (s *stubRoutineLogStore) Upsert(entry *models.RoutineLog) error {
	if s.err != nil {
		return s.err
	}
	s.logs = replaceByID(s.logs, *entry, entry.ID)
	return nil
}

type stubTaskStore struct {
	tasks []models.Task
}

func (s *stubTaskStore) All() ([]models.Task, error) {
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *stubTaskStore) Upsert(task *models.Task) error {
	s.tasks = replaceByID(s.tasks, *task, task.ID)
	return nil
}

type stubTaskLogStore struct {
	logs []models.TaskLog
}

func (s *stubTaskLogStore) All() ([]models.TaskLog, error) {
	return append([]models.TaskLog(nil), s.logs...), nil
}

func (s *stubTaskLogStore) Upsert(entry *models.TaskLog) error {
	s.logs = replaceByID(s.logs, *entry, entry.ID)
	return nil
}

type stubActionStore struct {
	actions []models.ActionItem
}

func (s *stubActionStore) All() ([]models.ActionItem, error) {
	return append([]models.ActionItem(nil), s.actions...), nil
}

func (s *stubActionStore) Upsert(item *models.ActionItem) error {
	s.actions = replaceByID(s.actions, *item, item.ID)
	return nil
}

type stubGoalStore struct {
	goals []models.Goal
}

func (s *stubGoalStore) All() ([]models.Goal, error) {
	return append([]models.Goal(nil), s.goals...), nil
}

func (s *stubGoalStore) Upsert(goal *models.Goal) error {
	s.goals = replaceByID(s.goals, *goal, goal.ID)
	return nil
}

type stubGoalCategoryStore struct {
	categories []models.GoalCategory
}

func (s *stubGoalCategoryStore) All() ([]models.GoalCategory, error) {
	return append([]models.GoalCategory(nil), s.categories...), nil
}

func (s *stubGoalCategoryStore) Upsert(category *models.GoalCategory) error {
	s.categories = replaceByID(s.categories, *category, category.ID)
	return nil
}

type stubMoodLogStore struct {
	logs []models.MoodLog
}

func (s *stubMoodLogStore) All() ([]models.MoodLog, error) {
	return append([]models.MoodLog(nil), s.logs...), nil
}

func (s *stubMoodLogStore) Upsert(entry *models.MoodLog) error {
	s.logs = replaceByID(s.logs, *entry, entry.ID)
	return nil
}

type stubPrincipleStore struct {
	principles []models.LifePrinciple
}

func (s *stubPrincipleStore) All() ([]models.LifePrinciple, error) {
	return append([]models.LifePrinciple(nil), s.principles...), nil
}

func (s *stubPrincipleStore) Upsert(principle *models.LifePrinciple) error {
	s.principles = replaceByID(s.principles, *principle, principle.ID)
	return nil
}

type stubVisualizationStore struct {
	items []models.VisualizationItem
}

func (s *stubVisualizationStore) All() ([]models.VisualizationItem, error) {
	return append([]models.VisualizationItem(nil), s.items...), nil
}

func (s *stubVisualizationStore) Upsert(item *models.VisualizationItem) error {
	s.items = replaceByID(s.items, *item, item.ID)
	return nil
}

type stubSettingsStore struct {
	settings []models.AppSettings
}

func (s *stubSettingsStore) All() ([]models.AppSettings, error) {
	return append([]models.AppSettings(nil), s.settings...), nil
}

func (s *stubSettingsStore) Upsert(settings *models.AppSettings) error {
	s.settings = replaceByID(s.settings, *settings, settings.ID)
	return nil
}

type identified interface {
	RecordID() string
}

func replaceByID[T any](records []T, record T, id string) []T {
	for index := range records {
		if any(&records[index]).(identified).RecordID() == id {
			records[index] = record
			return records
		}
	}
	return append(records, record)
}

func assertValidationField(err error, field string) error {
	validation, ok := err.(*ValidationError)
	if !ok {
		return fmt.Errorf("expected ValidationError, got %T (%v)", err, err)
	}
	if validation.Field != field {
		return fmt.Errorf("expected field %q, got %q", field, validation.Field)
	}
	return nil
}
