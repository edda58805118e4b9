package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory SQLite database closed at test end
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}

// NewTestHistory returns a step history repository over a fresh test database
func NewTestHistory(t testing.TB) (*persistence.GormStepHistoryRepository, *gorm.DB) {
	t.Helper()
	db := NewTestDB(t)
	return persistence.NewGormStepHistoryRepository(db), db
}
