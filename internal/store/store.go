package store

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Store is the versioned key-collection engine every repository sits on.
// Records are opaque JSON documents keyed by (collection, id); the typed
// view lives in Collection.
type Store struct {
	db  *gorm.DB
	now func() time.Time

	mu          sync.Mutex
	initialized bool
}

func New(database *gorm.DB) *Store {
	return &Store{
		db:  database,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Initialize brings the database to the expected schema version with the
// expected set of collections. Any mismatch (missing table, wrong version,
// wrong collection registry) destroys and recreates the database empty:
// consistency is favored over partial-data preservation. Idempotent and
// safe under concurrent first calls; the latch is set only after the first
// successful pass, so later callers are no-ops.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	consistent, err := s.schemaConsistent()
	if err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}
	if !consistent {
		if err := s.reset(); err != nil {
			return fmt.Errorf("reset schema: %w", err)
		}
	}

	s.initialized = true
	return nil
}

// ClearAll removes every record from every collection. The schema version and
// collection registry stay in place, so the store keeps reporting consistent.
func (s *Store) ClearAll() error {
	if err := s.Initialize(); err != nil {
		return err
	}
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&recordRow{}).Error; err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

func (s *Store) schemaConsistent() (bool, error) {
	migrator := s.db.Migrator()
	for _, table := range []any{&recordRow{}, &schemaVersionRow{}, &collectionRow{}} {
		if !migrator.HasTable(table) {
			return false, nil
		}
	}

	version := schemaVersionRow{}
	result := s.db.Where("key = ?", schemaVersionKey).Limit(1).Find(&version)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 || version.Version != SchemaVersion {
		return false, nil
	}

	registered := make([]collectionRow, 0)
	if err := s.db.Find(&registered).Error; err != nil {
		return false, err
	}
	names := make(map[Name]struct{}, len(registered))
	for _, row := range registered {
		names[Name(row.Name)] = struct{}{}
	}
	if len(names) != len(AllCollections()) {
		return false, nil
	}
	for _, name := range AllCollections() {
		if _, ok := names[name]; !ok {
			return false, nil
		}
	}

	return true, nil
}

func (s *Store) reset() error {
	migrator := s.db.Migrator()
	for _, table := range []any{&recordRow{}, &schemaVersionRow{}, &collectionRow{}} {
		if migrator.HasTable(table) {
			if err := migrator.DropTable(table); err != nil {
				return err
			}
		}
	}

	if err := s.db.AutoMigrate(&recordRow{}, &schemaVersionRow{}, &collectionRow{}); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&schemaVersionRow{Key: schemaVersionKey, Version: SchemaVersion}).Error; err != nil {
			return err
		}
		for _, name := range AllCollections() {
			if err := tx.Create(&collectionRow{Name: string(name)}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
