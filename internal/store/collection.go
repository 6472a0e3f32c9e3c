package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm/clause"
)

var ErrMissingRecordID = errors.New("record id is required")

// Collection is the typed accessor for one collection. The entity kind is
// fixed at compile time so collection names never leak into domain code.
type Collection[T any, PT interface {
	*T
	models.Entity
}] struct {
	store *Store
	name  Name
}

func NewCollection[T any, PT interface {
	*T
	models.Entity
}](store *Store, name Name) Collection[T, PT] {
	return Collection[T, PT]{store: store, name: name}
}

func (c Collection[T, PT]) Name() Name { return c.name }

// All returns every record in storage order. An empty or absent collection
// yields an empty slice, never an error.
func (c Collection[T, PT]) All() ([]T, error) {
	if err := c.store.Initialize(); err != nil {
		return nil, err
	}

	rows := make([]recordRow, 0)
	if err := c.store.db.Where("collection = ?", string(c.name)).Order("rowid ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		var record T
		if err := json.Unmarshal(row.Body, &record); err != nil {
			return nil, fmt.Errorf("decode %s record %s: %w", c.name, row.ID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Upsert inserts or fully replaces the record with the matching id, stamping
// UpdatedAt before the write.
func (c Collection[T, PT]) Upsert(record PT) error {
	if err := c.store.Initialize(); err != nil {
		return err
	}
	if record.RecordID() == "" {
		return ErrMissingRecordID
	}

	record.StampUpdated(c.store.now())
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c.name, err)
	}

	row := recordRow{Collection: string(c.name), ID: record.RecordID(), Body: body}
	if err := c.store.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("upsert %s record %s: %w", c.name, record.RecordID(), err)
	}
	return nil
}

// Delete physically removes one record. Domain flows prefer the soft-delete
// flag; this exists for administrative resets.
func (c Collection[T, PT]) Delete(id string) error {
	if err := c.store.Initialize(); err != nil {
		return err
	}
	if err := c.store.db.Where("collection = ? AND id = ?", string(c.name), id).Delete(&recordRow{}).Error; err != nil {
		return fmt.Errorf("delete %s record %s: %w", c.name, id, err)
	}
	return nil
}

// Clear physically removes every record in the collection.
func (c Collection[T, PT]) Clear() error {
	if err := c.store.Initialize(); err != nil {
		return err
	}
	if err := c.store.db.Where("collection = ?", string(c.name)).Delete(&recordRow{}).Error; err != nil {
		return fmt.Errorf("clear %s: %w", c.name, err)
	}
	return nil
}

// Collections bundles one typed accessor per entity kind.
type Collections struct {
	Routines       Collection[models.Routine, *models.Routine]
	RoutineLogs    Collection[models.RoutineLog, *models.RoutineLog]
	Tasks          Collection[models.Task, *models.Task]
	TaskLogs       Collection[models.TaskLog, *models.TaskLog]
	Actions        Collection[models.ActionItem, *models.ActionItem]
	Goals          Collection[models.Goal, *models.Goal]
	GoalCategories Collection[models.GoalCategory, *models.GoalCategory]
	LifePrinciples Collection[models.LifePrinciple, *models.LifePrinciple]
	Visualizations Collection[models.VisualizationItem, *models.VisualizationItem]
	MoodLogs       Collection[models.MoodLog, *models.MoodLog]
	Settings       Collection[models.AppSettings, *models.AppSettings]
}

func NewCollections(store *Store) *Collections {
	return &Collections{
		Routines:       NewCollection[models.Routine, *models.Routine](store, Routines),
		RoutineLogs:    NewCollection[models.RoutineLog, *models.RoutineLog](store, RoutineLogs),
		Tasks:          NewCollection[models.Task, *models.Task](store, Tasks),
		TaskLogs:       NewCollection[models.TaskLog, *models.TaskLog](store, TaskLogs),
		Actions:        NewCollection[models.ActionItem, *models.ActionItem](store, Actions),
		Goals:          NewCollection[models.Goal, *models.Goal](store, Goals),
		GoalCategories: NewCollection[models.GoalCategory, *models.GoalCategory](store, GoalCategories),
		LifePrinciples: NewCollection[models.LifePrinciple, *models.LifePrinciple](store, LifePrinciples),
		Visualizations: NewCollection[models.VisualizationItem, *models.VisualizationItem](store, Visualizations),
		MoodLogs:       NewCollection[models.MoodLog, *models.MoodLog](store, MoodLogs),
		Settings:       NewCollection[models.AppSettings, *models.AppSettings](store, Settings),
	}
}
