package metrics_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/metrics"
	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

func setupRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)
}

func newObservedSession(t *testing.T) (*game.SpaceEmpire, *metrics.GameMetricsCollector) {
	t.Helper()
	clock := shared.NewMockClock(time.Unix(1700000000, 0).UTC())
	session, err := game.NewSpaceEmpire(game.WithClock(clock))
	require.NoError(t, err)

	collector := metrics.NewGameMetricsCollector(session.Starmap())
	require.NoError(t, collector.Register())
	session.AddObserver(collector)
	return session, collector
}

func TestGameMetricsCollector_ReflectsLastReport(t *testing.T) {
	// Arrange
	setupRegistry(t)
	session, _ := newObservedSession(t)
	require.NoError(t, session.SetHomeworlds())
	require.NoError(t, session.AddShips(0, fleet.ShipClassFighter, 3))

	// Act
	_, err := session.Step(context.Background())
	require.NoError(t, err)
	_, err = session.Step(context.Background())
	require.NoError(t, err)

	// Assert
	expected := `
# HELP spaceempire_game_player_resources Player resource totals after the last step
# TYPE spaceempire_game_player_resources gauge
spaceempire_game_player_resources{player_id="0",resource="food"} 0
spaceempire_game_player_resources{player_id="0",resource="gold"} 8
spaceempire_game_player_resources{player_id="0",resource="technology"} 0
spaceempire_game_player_resources{player_id="1",resource="food"} 0
spaceempire_game_player_resources{player_id="1",resource="gold"} 8
spaceempire_game_player_resources{player_id="1",resource="technology"} 0
# HELP spaceempire_game_steps_total Total number of steps run
# TYPE spaceempire_game_steps_total counter
spaceempire_game_steps_total 2
# HELP spaceempire_game_systems_owned Number of solar systems owned per player
# TYPE spaceempire_game_systems_owned gauge
spaceempire_game_systems_owned{player_id="0"} 1
spaceempire_game_systems_owned{player_id="1"} 1
# HELP spaceempire_game_fleet_ships Ships stationed across the starmap by class
# TYPE spaceempire_game_fleet_ships gauge
spaceempire_game_fleet_ships{ship_class="Fighter"} 3
`
	err = testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected),
		"spaceempire_game_player_resources",
		"spaceempire_game_steps_total",
		"spaceempire_game_systems_owned",
		"spaceempire_game_fleet_ships",
	)
	assert.NoError(t, err)
}

func TestGameMetricsCollector_DropsStaleOwnership(t *testing.T) {
	setupRegistry(t)
	session, _ := newObservedSession(t)
	require.NoError(t, session.SetHomeworlds())
	_, err := session.Step(context.Background())
	require.NoError(t, err)

	require.NoError(t, session.ClearSystem(0))
	_, err = session.Step(context.Background())
	require.NoError(t, err)

	expected := `
# HELP spaceempire_game_systems_owned Number of solar systems owned per player
# TYPE spaceempire_game_systems_owned gauge
spaceempire_game_systems_owned{player_id="1"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected), "spaceempire_game_systems_owned"))
}

func TestGlobalRecorders_NoOpWithoutCollector(t *testing.T) {
	metrics.ResetRegistry()

	assert.False(t, metrics.IsEnabled())
	assert.NotPanics(t, func() {
		metrics.RecordPlayerResources(0, 1, 2, 3)
		metrics.RecordStep(1, 0)
	})
}

func TestGlobalRecorders_DelegateToCollector(t *testing.T) {
	setupRegistry(t)
	collector := metrics.NewGameMetricsCollector(nil)
	require.NoError(t, collector.Register())
	metrics.SetGlobalGameCollector(collector)

	metrics.RecordStep(7, 1700000000)

	count, err := testutil.GatherAndCount(metrics.Registry, "spaceempire_game_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegister_WithoutRegistryIsNoOp(t *testing.T) {
	metrics.ResetRegistry()

	assert.NoError(t, metrics.NewGameMetricsCollector(nil).Register())
	assert.NoError(t, metrics.NewRequestMetricsCollector().Register())
}

func TestPrometheusMiddleware_CountsRequests(t *testing.T) {
	// Arrange
	setupRegistry(t)
	collector := metrics.NewRequestMetricsCollector()
	require.NoError(t, collector.Register())

	session, err := game.NewSpaceEmpire(game.WithPlayers(3))
	require.NoError(t, err)
	med := mediator.NewMediator()
	med.RegisterMiddleware(metrics.PrometheusMiddleware(collector))
	require.NoError(t, game.RegisterHandlers(med, session))

	// Act
	_, err = med.Send(context.Background(), &game.StepCommand{})
	require.NoError(t, err)
	_, err = med.Send(context.Background(), &game.SetHomeworldsCommand{})
	require.Error(t, err)

	// Assert
	expected := `
# HELP spaceempire_game_requests_total Total number of commands and queries executed by type and status
# TYPE spaceempire_game_requests_total counter
spaceempire_game_requests_total{request="SetHomeworldsCommand",status="error"} 1
spaceempire_game_requests_total{request="StepCommand",status="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected), "spaceempire_game_requests_total"))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	middleware := metrics.PrometheusMiddleware(nil)

	response, err := middleware(context.Background(), &game.StepCommand{},
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", response)
}

func TestServer_ServesRegistry(t *testing.T) {
	// Arrange
	setupRegistry(t)
	collector := metrics.NewGameMetricsCollector(nil)
	require.NoError(t, collector.Register())
	collector.RecordStep(3, 0)

	server, err := metrics.NewServer("127.0.0.1:0", "/metrics")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()

	// Act
	resp, err := http.Get("http://" + server.Addr() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "spaceempire_game_last_step_sequence 3")

	cancel()
	assert.NoError(t, <-done)
}

func TestNewServer_RequiresRegistry(t *testing.T) {
	metrics.ResetRegistry()

	_, err := metrics.NewServer("127.0.0.1:0", "/metrics")

	assert.Error(t, err)
}
