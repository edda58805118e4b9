package game

import (
	"context"
	"time"

	"github.com/andrescamacho/spaceempire-go/internal/application/logging"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// PlayerReport is one player's resource total after a gathering pass
type PlayerReport struct {
	PlayerID  shared.PlayerID
	Resources shared.Resources
}

// StepReport describes the outcome of one Step. Sequence counts Step calls
// within the session for observers; the game itself keeps no turn counter.
type StepReport struct {
	SessionID   string
	Sequence    uint64
	Timestamp   time.Time
	Fingerprint string
	Players     []PlayerReport
}

// StepObserver receives every StepReport after gathering has run
type StepObserver interface {
	ObserveStep(ctx context.Context, report *StepReport) error
}

// StepObserverFunc adapts a function to StepObserver
type StepObserverFunc func(ctx context.Context, report *StepReport) error

func (f StepObserverFunc) ObserveStep(ctx context.Context, report *StepReport) error {
	return f(ctx, report)
}

// LogObserver writes each player's resources to the context logger
type LogObserver struct{}

func NewLogObserver() *LogObserver {
	return &LogObserver{}
}

func (o *LogObserver) ObserveStep(ctx context.Context, report *StepReport) error {
	logger := logging.LoggerFromContext(ctx)
	for _, p := range report.Players {
		logger.Log("INFO", "Player resources", map[string]interface{}{
			"session_id": report.SessionID,
			"step":       report.Sequence,
			"player_id":  p.PlayerID.Value(),
			"food":       p.Resources.Food,
			"technology": p.Resources.Technology,
			"gold":       p.Resources.Gold,
		})
	}
	return nil
}
