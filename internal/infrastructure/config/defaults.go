package config

import (
	"time"

	"github.com/spf13/viper"
)

// RegisterDefaults seeds viper with every known key so env vars resolve
// even when no config file is present
func RegisterDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("game.players", d.Game.Players)
	v.SetDefault("game.gathering_policy", d.Game.GatheringPolicy)
	v.SetDefault("game.homeworlds", d.Game.Homeworlds)
	v.SetDefault("game.step_rate", d.Game.StepRate)
	v.SetDefault("game.step_burst", d.Game.StepBurst)

	v.SetDefault("database.enabled", d.Database.Enabled)
	v.SetDefault("database.type", d.Database.Type)
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.pool.max_open", d.Database.Pool.MaxOpen)
	v.SetDefault("database.pool.max_idle", d.Database.Pool.MaxIdle)
	v.SetDefault("database.pool.max_lifetime", d.Database.Pool.MaxLifetime)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.include_caller", d.Logging.IncludeCaller)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.host", d.Metrics.Host)
	v.SetDefault("metrics.port", d.Metrics.Port)
	v.SetDefault("metrics.path", d.Metrics.Path)
}

// DefaultConfig returns a fully defaulted configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Game: GameConfig{Homeworlds: true},
	}
	SetDefaults(cfg)
	return cfg
}

// SetDefaults fills zero-valued fields. Booleans are left alone.
func SetDefaults(cfg *Config) {
	// Game defaults
	if cfg.Game.Players == 0 {
		cfg.Game.Players = 2
	}
	if cfg.Game.GatheringPolicy == "" {
		cfg.Game.GatheringPolicy = "reset"
	}
	if cfg.Game.StepRate == 0 {
		cfg.Game.StepRate = 1
	}
	if cfg.Game.StepBurst == 0 {
		cfg.Game.StepBurst = 1
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "spaceempire.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "spaceempire"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "spaceempire"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
