package game_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/application/logging"
	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

func newMediator(t *testing.T, session *game.SpaceEmpire) mediator.Mediator {
	t.Helper()
	med := mediator.NewMediator()
	med.RegisterMiddleware(game.LoggingMiddleware)
	require.NoError(t, game.RegisterHandlers(med, session))
	return med
}

func TestRegisterHandlers_Twice(t *testing.T) {
	session := newSession(t)
	med := newMediator(t, session)

	assert.Error(t, game.RegisterHandlers(med, session))
}

func TestMediator_StepFlow(t *testing.T) {
	// Arrange
	session := newSession(t)
	med := newMediator(t, session)
	ctx := context.Background()

	// Act
	_, err := med.Send(ctx, &game.SetHomeworldsCommand{})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.BuildCommand{SystemID: 8, Class: building.ClassLaboratory})
	require.NoError(t, err)
	response, err := med.Send(ctx, &game.StepCommand{})
	require.NoError(t, err)

	// Assert
	report, ok := response.(*game.StepReport)
	require.True(t, ok)
	assert.Equal(t, shared.NewResources(0, 0, 8), report.Players[0].Resources)
	assert.Equal(t, shared.NewResources(0, 2, 0), report.Players[1].Resources)

	response, err = med.Send(ctx, &game.ListPlayersQuery{})
	require.NoError(t, err)
	assert.Equal(t, report.Players, response.(*game.ListPlayersResponse).Players)
}

func TestMediator_FleetCommands(t *testing.T) {
	session := newSession(t)
	med := newMediator(t, session)
	ctx := context.Background()

	_, err := med.Send(ctx, &game.AddShipsCommand{SystemID: 1, Class: fleet.ShipClassScout, Count: 3})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.TransferShipsCommand{From: 1, To: 5, Class: fleet.ShipClassScout, Count: 2})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.MergeFleetsCommand{From: 5, To: 7})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.TransferShipsCommand{From: 1, To: 5, Class: fleet.ShipClassScout, Count: 9})

	var insufficient *shared.InsufficientShipsError
	require.True(t, errors.As(err, &insufficient))

	response, err := med.Send(ctx, &game.GetStarmapQuery{})
	require.NoError(t, err)
	view := response.(*game.GetStarmapResponse)
	require.Len(t, view.Systems, galaxy.UniverseSize)
	assert.Equal(t, map[fleet.ShipClass]int{fleet.ShipClassScout: 1}, view.Systems[1].Fleet)
	assert.Empty(t, view.Systems[5].Fleet)
	assert.Equal(t, map[fleet.ShipClass]int{fleet.ShipClassScout: 2}, view.Systems[7].Fleet)
}

func TestMediator_StarmapQueryReflectsOwnership(t *testing.T) {
	session := newSession(t)
	med := newMediator(t, session)
	ctx := context.Background()
	_, err := med.Send(ctx, &game.SetHomeworldsCommand{})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.ClaimSystemCommand{SystemID: 4, PlayerID: 1})
	require.NoError(t, err)
	_, err = med.Send(ctx, &game.ClearSystemCommand{SystemID: 0})
	require.NoError(t, err)

	response, err := med.Send(ctx, &game.GetStarmapQuery{})
	require.NoError(t, err)

	view := response.(*game.GetStarmapResponse)
	assert.Nil(t, view.Systems[0].Owner)
	require.NotNil(t, view.Systems[4].Owner)
	assert.Equal(t, shared.PlayerID(1), *view.Systems[4].Owner)
	assert.Nil(t, view.Systems[4].Building)
	require.NotNil(t, view.Systems[8].Building)
	assert.Equal(t, building.ClassGoldMine, *view.Systems[8].Building)
	assert.Len(t, view.Layout.Markers, galaxy.UniverseSize)
	assert.Len(t, view.Layout.Lines, 18)
	assert.Equal(t, session.Starmap().Fingerprint(), view.Fingerprint)
}

func TestHandler_RejectsUnknownRequest(t *testing.T) {
	handler := game.NewHandler(newSession(t))

	_, err := handler.Handle(context.Background(), "nope")

	assert.ErrorContains(t, err, "invalid request type")
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logging.WithLogger(context.Background(), logging.NewSlogLogger(logger))
	med := newMediator(t, newSession(t, game.WithPlayers(3)))

	// Act
	_, err := med.Send(ctx, &game.SetHomeworldsCommand{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Handling request")
	assert.Contains(t, buf.String(), "Request failed")
	assert.Contains(t, buf.String(), "invalid player count")
}

func TestLogObserver_LogsEachPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logging.WithLogger(context.Background(), logging.NewSlogLogger(logger))
	session := newSession(t, game.WithObservers(game.NewLogObserver()))
	require.NoError(t, session.SetHomeworlds())

	_, err := session.Step(ctx)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "player_id=0")
	assert.Contains(t, buf.String(), "player_id=1")
	assert.Contains(t, buf.String(), "gold=8")
}

func TestStepObserverFunc(t *testing.T) {
	var seen uint64
	session := newSession(t)
	session.AddObserver(game.StepObserverFunc(func(ctx context.Context, report *game.StepReport) error {
		seen = report.Sequence
		return nil
	}))

	_, err := session.Step(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(1), seen)
}
