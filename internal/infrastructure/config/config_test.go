package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/config"
)

// chdirTemp runs the test from an empty directory so no stray config.yaml or .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, "reset", cfg.Game.GatheringPolicy)
	assert.True(t, cfg.Game.Homeworlds)
	assert.Equal(t, 1.0, cfg.Game.StepRate)
	assert.Equal(t, 1, cfg.Game.StepBurst)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "spaceempire.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Minute, cfg.Database.Pool.MaxLifetime)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "localhost:9090", cfg.Metrics.Addr())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SE_GAME_GATHERING_POLICY", "accumulate")
	t.Setenv("SE_GAME_STEP_RATE", "4.5")
	t.Setenv("SE_LOGGING_LEVEL", "debug")
	t.Setenv("SE_METRICS_ENABLED", "true")
	t.Setenv("SE_DATABASE_ENABLED", "true")
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/se")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "accumulate", cfg.Game.GatheringPolicy)
	assert.Equal(t, 4.5, cfg.Game.StepRate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgresql://u:p@db:5432/se", cfg.Database.URL)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "game.yaml")
	content := `
game:
  players: 2
  gathering_policy: accumulate
  step_burst: 3
database:
  enabled: true
  type: sqlite
  path: ":memory:"
logging:
  format: json
  output: stdout
metrics:
  port: 9191
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "accumulate", cfg.Game.GatheringPolicy)
	assert.Equal(t, 3, cfg.Game.StepBurst)
	assert.True(t, cfg.Game.Homeworlds)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, 9191, cfg.Metrics.Port)
}

func TestLoadConfig_SearchesConfigsDir(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"),
		[]byte("logging:\n  level: warn\n"), 0o644))

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)

	_, err := config.LoadConfig(filepath.Join(dir, "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown policy", map[string]string{"SE_GAME_GATHERING_POLICY": "hoard"}},
		{"unknown log level", map[string]string{"SE_LOGGING_LEVEL": "loud"}},
		{"unknown database type", map[string]string{"SE_DATABASE_TYPE": "mysql"}},
		{"homeworlds need two players", map[string]string{"SE_GAME_PLAYERS": "3"}},
		{"privileged metrics port", map[string]string{"SE_METRICS_PORT": "80"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadConfig("")

			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadConfig_ThreePlayersWithoutHomeworlds(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SE_GAME_PLAYERS", "3")
	t.Setenv("SE_GAME_HOMEWORLDS", "false")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Game.Players)
	assert.False(t, cfg.Game.Homeworlds)
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	dir := chdirTemp(t)

	cfg := config.LoadConfigOrDefault(filepath.Join(dir, "absent.yaml"))

	assert.Equal(t, config.DefaultConfig(), cfg)
}
