package metrics

import (
	"context"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
)

// StarmapView is the read-only part of the starmap the collector samples
type StarmapView interface {
	Systems() []*galaxy.SolarSystem
}

// GameMetricsCollector records player resources, step progress and
// starmap ownership. It is a game.StepObserver.
type GameMetricsCollector struct {
	starmap StarmapView

	playerResources *prometheus.GaugeVec
	stepsTotal      prometheus.Counter
	lastStep        prometheus.Gauge
	lastStepTime    prometheus.Gauge
	systemsOwned    *prometheus.GaugeVec
	fleetShips      *prometheus.GaugeVec

	mu sync.Mutex
}

// NewGameMetricsCollector creates a collector; starmap may be nil to skip ownership gauges
func NewGameMetricsCollector(starmap StarmapView) *GameMetricsCollector {
	return &GameMetricsCollector{
		starmap: starmap,

		playerResources: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "player_resources",
				Help:      "Player resource totals after the last step",
			},
			[]string{"player_id", "resource"},
		),

		stepsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "steps_total",
				Help:      "Total number of steps run",
			},
		),

		lastStep: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_step_sequence",
				Help:      "Sequence number of the last step in the session",
			},
		),

		lastStepTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_step_timestamp_seconds",
				Help:      "Unix time of the last step",
			},
		),

		systemsOwned: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "systems_owned",
				Help:      "Number of solar systems owned per player",
			},
			[]string{"player_id"},
		),

		fleetShips: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fleet_ships",
				Help:      "Ships stationed across the starmap by class",
			},
			[]string{"ship_class"},
		),
	}
}

// Register registers all game metrics with the Prometheus registry
func (c *GameMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.playerResources,
		c.stepsTotal,
		c.lastStep,
		c.lastStepTime,
		c.systemsOwned,
		c.fleetShips,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordPlayerResources sets the resource gauges of one player
func (c *GameMetricsCollector) RecordPlayerResources(playerID uint32, food, technology, gold int32) {
	id := strconv.FormatUint(uint64(playerID), 10)
	c.playerResources.WithLabelValues(id, "food").Set(float64(food))
	c.playerResources.WithLabelValues(id, "technology").Set(float64(technology))
	c.playerResources.WithLabelValues(id, "gold").Set(float64(gold))
}

// RecordStep counts a step and stores its sequence and time
func (c *GameMetricsCollector) RecordStep(sequence uint64, unixSeconds float64) {
	c.stepsTotal.Inc()
	c.lastStep.Set(float64(sequence))
	c.lastStepTime.Set(unixSeconds)
}

// ObserveStep records the report and samples the starmap
func (c *GameMetricsCollector) ObserveStep(ctx context.Context, report *game.StepReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range report.Players {
		c.RecordPlayerResources(p.PlayerID.Value(), p.Resources.Food, p.Resources.Technology, p.Resources.Gold)
	}
	c.RecordStep(report.Sequence, float64(report.Timestamp.UnixNano())/1e9)

	if c.starmap != nil {
		c.sampleStarmap()
	}
	return nil
}

func (c *GameMetricsCollector) sampleStarmap() {
	owned := make(map[string]int)
	ships := make(map[string]int)
	for _, system := range c.starmap.Systems() {
		if owner, ok := system.Owner(); ok {
			owned[owner.String()]++
		}
		if f := system.Fleet(); f != nil {
			for class, count := range f.Composition() {
				ships[class.Name()] += count
			}
		}
	}

	// Systems can change hands, so stale labels are dropped each sample
	c.systemsOwned.Reset()
	for playerID, count := range owned {
		c.systemsOwned.WithLabelValues(playerID).Set(float64(count))
	}
	c.fleetShips.Reset()
	for class, count := range ships {
		c.fleetShips.WithLabelValues(class).Set(float64(count))
	}
}
