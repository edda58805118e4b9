package config

// GameConfig holds session configuration
type GameConfig struct {
	// Number of players in the session
	Players int `mapstructure:"players" validate:"min=0,max=64"`

	// How players fold production into their totals: reset, accumulate
	GatheringPolicy string `mapstructure:"gathering_policy" validate:"required,oneof=reset accumulate"`

	// Assign homeworlds at session start (needs exactly two players)
	Homeworlds bool `mapstructure:"homeworlds"`

	// Autoplay pacing: steps per second (0 means unlimited) and burst size
	StepRate  float64 `mapstructure:"step_rate" validate:"min=0"`
	StepBurst int     `mapstructure:"step_burst" validate:"min=1"`
}
