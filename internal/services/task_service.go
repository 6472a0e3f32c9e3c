package services

import (
	"sort"

	"github.com/stridehq/stride/internal/models"
)

const maxTaskNameLength = 60

type TaskStore interface {
	All() ([]models.Task, error)
	Upsert(task *models.Task) error
}

type TaskLogStore interface {
	All() ([]models.TaskLog, error)
	Upsert(entry *models.TaskLog) error
}

type TaskService struct {
	tasks TaskStore
	logs  TaskLogStore
}

func NewTaskService(tasks TaskStore, logs TaskLogStore) *TaskService {
	return &TaskService{tasks: tasks, logs: logs}
}

func (service *TaskService) Tasks() ([]models.Task, error) {
	all, err := service.tasks.All()
	if err != nil {
		return nil, err
	}
	tasks := activeRecords(all)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Name < tasks[j].Name
	})
	return tasks, nil
}

func (service *TaskService) SaveTask(task *models.Task) error {
	if err := validateRequiredText("name", task.Name, maxTaskNameLength); err != nil {
		return err
	}
	if task.TargetHours < 0 || task.TargetHours > 24 {
		return newValidationError("targetHours", "must be between 0 and 24")
	}
	if err := NormalizeRecurrence(&task.Recurrence); err != nil {
		return err
	}

	ensureIdentity(&task.Meta)
	return service.tasks.Upsert(task)
}

// LogsForRange returns the non-deleted logs dated inside [from, to],
// including ignored ones; ratio computations filter those out themselves.
func (service *TaskService) LogsForRange(from models.Date, to models.Date) ([]models.TaskLog, error) {
	all, err := service.logs.All()
	if err != nil {
		return nil, err
	}
	logs := make([]models.TaskLog, 0, len(all))
	for _, entry := range all {
		if !entry.IsDeleted && entry.Date.Within(from, to) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

// UpsertHours writes the hours for the (task, date) pair by natural key,
// mutating any existing non-deleted log for that pair in place.
func (service *TaskService) UpsertHours(taskID string, date models.Date, hours float64, ignored bool) error {
	if hours < 0 || hours > 24 {
		return newValidationError("hours", "must be between 0 and 24")
	}

	all, err := service.logs.All()
	if err != nil {
		return err
	}

	var entry *models.TaskLog
	for index := range all {
		candidate := &all[index]
		if candidate.TaskID == taskID && candidate.Date.Equal(date) && !candidate.IsDeleted {
			entry = candidate
			break
		}
	}
	if entry == nil {
		entry = &models.TaskLog{TaskID: taskID, Date: date}
		ensureIdentity(&entry.Meta)
	}

	entry.Hours = hours
	entry.Ignored = ignored
	return service.logs.Upsert(entry)
}
