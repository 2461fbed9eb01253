package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lexcase/store"
)

func setupTestStore(t *testing.T) *store.Store {
	// Unique shared memory name to isolate tests from each other
	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	s := store.New(conn)
	assert.NoError(t, s.Migrate())
	return s
}

func stringPtr(s string) *string {
	return &s
}
