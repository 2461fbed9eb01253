package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// collectionRow is one persisted collection: the full ordered record set
// of a single entity type, serialized as a JSON array.
type collectionRow struct {
	Key       string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName specifies the table name for the collection rows
func (collectionRow) TableName() string {
	return "collections"
}

// Store persists named collections in the database. Every write replaces
// the whole collection; there is no partial write format.
//
// A Store over a nil database handle degrades gracefully: reads return
// empty collections and writes are silent no-ops. This stands in for the
// original "no durable storage in the current execution context" case.
type Store struct {
	db *gorm.DB
}

// New creates a Store over the given database handle. A nil handle is
// allowed and yields a non-persisting store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the collections table if it does not exist
func (s *Store) Migrate() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.AutoMigrate(&collectionRow{}); err != nil {
		return fmt.Errorf("failed to migrate collections table: %w", err)
	}
	return nil
}

// Read returns the raw payload of a collection, or nil if the collection
// has never been written or no durable storage is available.
func (s *Store) Read(key string) ([]byte, error) {
	if s.db == nil {
		return nil, nil
	}

	var row collectionRow
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	return []byte(row.Payload), nil
}

// Write replaces the payload of a collection. The replacement is atomic
// from the caller's point of view: a single upsert of one row.
func (s *Store) Write(key string, payload []byte) error {
	if s.db == nil {
		return nil
	}

	row := collectionRow{Key: key, Payload: string(payload), UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to persist collection %q: %w", key, err)
	}
	return nil
}
