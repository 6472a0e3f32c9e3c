package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidImportPayload marks validation failures of an import payload.
// Nothing is mutated when this is returned.
var ErrInvalidImportPayload = errors.New("invalid import payload")

// ExportAll produces one JSON object keyed by the canonical collection names,
// each value an array of that collection's full record set. Soft-deleted
// records are included: the snapshot must be restorable.
func (s *Store) ExportAll() ([]byte, error) {
	if err := s.Initialize(); err != nil {
		return nil, err
	}

	rows := make([]recordRow, 0)
	if err := s.db.Order("rowid ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	snapshot := make(map[string][]json.RawMessage, len(AllCollections()))
	for _, name := range AllCollections() {
		snapshot[string(name)] = make([]json.RawMessage, 0)
	}
	for _, row := range rows {
		bucket, ok := snapshot[row.Collection]
		if !ok {
			continue
		}
		snapshot[row.Collection] = append(bucket, json.RawMessage(row.Body))
	}

	return json.MarshalIndent(snapshot, "", "  ")
}

// ImportAll validates the whole payload first, then replaces the contents of
// every collection. Validation failures leave the store untouched.
func (s *Store) ImportAll(payload []byte) error {
	if err := s.Initialize(); err != nil {
		return err
	}

	replacements, err := parseImportPayload(payload)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range AllCollections() {
			if err := tx.Where("collection = ?", string(name)).Delete(&recordRow{}).Error; err != nil {
				return fmt.Errorf("clear %s: %w", name, err)
			}
			for _, row := range replacements[name] {
				row := row
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("restore %s record %s: %w", name, row.ID, err)
				}
			}
		}
		return nil
	})
}

func parseImportPayload(payload []byte) (map[Name][]recordRow, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil || root == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidImportPayload)
	}

	replacements := make(map[Name][]recordRow, len(AllCollections()))
	for _, name := range AllCollections() {
		raw, ok := root[string(name)]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q array", ErrInvalidImportPayload, name)
		}

		items := make([]json.RawMessage, 0)
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %q is not an array", ErrInvalidImportPayload, name)
		}

		rows := make([]recordRow, 0, len(items))
		for index, item := range items {
			var probe struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(item, &probe); err != nil {
				return nil, fmt.Errorf("%w: %q entry %d is not an object", ErrInvalidImportPayload, name, index)
			}
			if strings.TrimSpace(probe.ID) == "" {
				return nil, fmt.Errorf("%w: %q entry %d has no id", ErrInvalidImportPayload, name, index)
			}
			rows = append(rows, recordRow{
				Collection: string(name),
				ID:         probe.ID,
				Body:       append([]byte(nil), item...),
			})
		}
		replacements[name] = rows
	}

	return replacements, nil
}
