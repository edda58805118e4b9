package helpers

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/database"
)

// SharedTestDB is the singleton database instance used across BDD scenarios
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database.
// Called once before the suite runs.
func InitializeSharedTestDB() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}

	SharedTestDB = db
	return nil
}

// TruncateAllTables clears all data so every scenario starts empty
func TruncateAllTables() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}

	tables := []string{
		"step_history",
	}

	for _, table := range tables {
		if err := SharedTestDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return nil
}

// CloseSharedTestDB closes the shared database connection
func CloseSharedTestDB() error {
	if SharedTestDB == nil {
		return nil
	}

	err := database.Close(SharedTestDB)
	SharedTestDB = nil
	return err
}
