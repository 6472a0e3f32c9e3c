package models

import "time"

// Meta is the base shape shared by every persisted record. IDs are generated
// client-side and never change once set; deletion is a tombstone flag, not a
// physical removal.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

func (m *Meta) RecordID() string { return m.ID }

func (m Meta) Deleted() bool { return m.IsDeleted }

func (m *Meta) StampUpdated(now time.Time) { m.UpdatedAt = now }

// Entity is implemented by pointers to every persisted record type.
type Entity interface {
	RecordID() string
	StampUpdated(now time.Time)
}
