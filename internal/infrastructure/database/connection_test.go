package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/config"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/database"
)

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mysql"})

	assert.ErrorContains(t, err, "unsupported database type")
}

func TestOpen_SQLiteFileMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := database.Open(&config.DatabaseConfig{Type: "sqlite", Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.True(t, db.Migrator().HasTable(&persistence.StepRecordModel{}))
	assert.FileExists(t, path)
}

func TestNewTestConnection_InMemory(t *testing.T) {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable("step_history"))
}
