package store

import (
	"encoding/json"
	"fmt"
)

// Record is implemented by every entity persisted in a collection.
type Record interface {
	RecordID() string
}

// Collection provides typed, ordered record operations over a single
// store key. Records keep their insertion order; every mutation is a
// load-modify-store cycle over the full collection.
type Collection[T Record] struct {
	store *Store
	key   string
}

// NewCollection binds a record type to a collection key in the store
func NewCollection[T Record](s *Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

// All returns every record in storage order. An unwritten or unavailable
// collection yields an empty slice; a corrupted payload is rejected here
// rather than propagated.
func (c *Collection[T]) All() ([]T, error) {
	payload, err := c.store.Read(c.key)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("corrupt collection %q: %w", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Replace persists the given records as the full collection content
func (c *Collection[T]) Replace(records []T) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.key, err)
	}
	return c.store.Write(c.key, payload)
}

// Append adds one record at the end of the collection and persists it
func (c *Collection[T]) Append(rec T) (T, error) {
	records, err := c.All()
	if err != nil {
		var zero T
		return zero, err
	}

	records = append(records, rec)
	if err := c.Replace(records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Find returns the record with the given id, or ErrNotFound
func (c *Collection[T]) Find(id string) (T, error) {
	var zero T

	records, err := c.All()
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Update locates the record with the given id, applies the mutation and
// persists the collection. Returns the mutated record, or ErrNotFound
// when no record matches; the collection is left untouched in that case.
func (c *Collection[T]) Update(id string, apply func(*T)) (T, error) {
	var zero T

	records, err := c.All()
	if err != nil {
		return zero, err
	}
	for i := range records {
		if records[i].RecordID() == id {
			apply(&records[i])
			if err := c.Replace(records); err != nil {
				return zero, err
			}
			return records[i], nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the first record with the given id and persists the
// remainder. Deleting a missing id is not an error and does not rewrite
// the collection.
func (c *Collection[T]) Delete(id string) error {
	records, err := c.All()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].RecordID() == id {
			records = append(records[:i], records[i+1:]...)
			return c.Replace(records)
		}
	}
	return nil
}
