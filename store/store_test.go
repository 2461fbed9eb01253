package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *Store {
	// Unique shared memory name to isolate tests from each other
	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	s := New(conn)
	assert.NoError(t, s.Migrate())
	return s
}

func TestReadUnwrittenCollection(t *testing.T) {
	s := setupTestStore(t)

	payload, err := s.Read("cases")
	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestWriteReadRoundtrip(t *testing.T) {
	s := setupTestStore(t)

	assert.NoError(t, s.Write("cases", []byte(`[{"id":"1"}]`)))

	payload, err := s.Read("cases")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(payload))
}

func TestWriteReplacesWholeCollection(t *testing.T) {
	s := setupTestStore(t)

	assert.NoError(t, s.Write("cases", []byte(`[{"id":"1"},{"id":"2"}]`)))
	assert.NoError(t, s.Write("cases", []byte(`[{"id":"2"}]`)))

	payload, err := s.Read("cases")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"2"}]`, string(payload))
}

func TestCollectionsAreIndependentlyKeyed(t *testing.T) {
	s := setupTestStore(t)

	assert.NoError(t, s.Write("cases", []byte(`[{"id":"1"}]`)))
	assert.NoError(t, s.Write("notes", []byte(`[{"id":"9"}]`)))

	payload, err := s.Read("notes")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"9"}]`, string(payload))
}

func TestNilStoreDegradesGracefully(t *testing.T) {
	s := New(nil)

	assert.NoError(t, s.Migrate())

	payload, err := s.Read("cases")
	assert.NoError(t, err)
	assert.Nil(t, payload)

	assert.NoError(t, s.Write("cases", []byte(`[{"id":"1"}]`)))

	// The write above was a no-op
	payload, err = s.Read("cases")
	assert.NoError(t, err)
	assert.Nil(t, payload)
}
