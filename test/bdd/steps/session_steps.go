package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/player"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
	"github.com/andrescamacho/spaceempire-go/test/helpers"
)

// sessionContext drives a SpaceEmpire through the mediator the way the CLI does
type sessionContext struct {
	ctx      context.Context
	session  *game.SpaceEmpire
	mediator mediator.Mediator
	history  *persistence.GormStepHistoryRepository
	observer *helpers.MockStepObserver

	cmdErr  error
	stepErr error
}

func (sc *sessionContext) reset() {
	sc.ctx = context.Background()
	sc.session = nil
	sc.mediator = nil
	sc.history = nil
	sc.observer = nil
	sc.cmdErr = nil
	sc.stepErr = nil
}

func (sc *sessionContext) send(request mediator.Request) (mediator.Response, error) {
	if sc.mediator == nil {
		return nil, fmt.Errorf("no session has been started")
	}
	return sc.mediator.Send(sc.ctx, request)
}

func (sc *sessionContext) systemFleetCount(id int, className string) (int, error) {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return 0, err
	}
	system, err := sc.session.Starmap().System(shared.SolarSystemID(id))
	if err != nil {
		return 0, err
	}
	if system.Fleet() == nil {
		return 0, nil
	}
	return system.Fleet().Count(class), nil
}

// Given steps

func (sc *sessionContext) aSessionWithPlayers(players int, policyName string) error {
	policy, err := player.ParseGatheringPolicy(policyName)
	if err != nil {
		return err
	}

	session, err := game.NewSpaceEmpire(
		game.WithPlayers(players),
		game.WithGatheringPolicy(policy),
	)
	if err != nil {
		return err
	}

	med := mediator.NewMediator()
	med.RegisterMiddleware(game.LoggingMiddleware)
	if err := game.RegisterHandlers(med, session); err != nil {
		return err
	}

	sc.session = session
	sc.mediator = med
	return nil
}

func (sc *sessionContext) homeworldsAreAssigned() error {
	_, err := sc.send(&game.SetHomeworldsCommand{})
	return err
}

func (sc *sessionContext) systemHasBuilding(id int, className string) error {
	class, err := building.ParseClass(className)
	if err != nil {
		return err
	}
	_, err = sc.send(&game.BuildCommand{SystemID: shared.SolarSystemID(id), Class: class})
	return err
}

func (sc *sessionContext) playerClaimsSystem(playerID, id int) error {
	_, err := sc.send(&game.ClaimSystemCommand{
		SystemID: shared.SolarSystemID(id),
		PlayerID: shared.PlayerID(playerID),
	})
	return err
}

func (sc *sessionContext) systemIsCleared(id int) error {
	_, err := sc.send(&game.ClearSystemCommand{SystemID: shared.SolarSystemID(id)})
	return err
}

func (sc *sessionContext) systemHasShips(id, count int, className string) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	_, err = sc.send(&game.AddShipsCommand{SystemID: shared.SolarSystemID(id), Class: class, Count: count})
	return err
}

func (sc *sessionContext) stepHistoryIsRecorded() error {
	if helpers.SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	sc.history = persistence.NewGormStepHistoryRepository(helpers.SharedTestDB)
	sc.session.AddObserver(sc.history)
	return nil
}

func (sc *sessionContext) anObserverThatFailsWith(message string) error {
	sc.observer = helpers.NewMockStepObserver()
	sc.observer.SetError(errors.New(message))
	sc.session.AddObserver(sc.observer)
	return nil
}

// When steps

func (sc *sessionContext) stepsAreRun(steps int) error {
	for i := 0; i < steps; i++ {
		resp, err := sc.send(&game.StepCommand{})
		if resp == nil && err != nil {
			return err
		}
		sc.stepErr = err
	}
	return nil
}

func (sc *sessionContext) shipsAreTransferred(count int, className string, from, to int) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	_, sc.cmdErr = sc.send(&game.TransferShipsCommand{
		From:  shared.SolarSystemID(from),
		To:    shared.SolarSystemID(to),
		Class: class,
		Count: count,
	})
	return nil
}

func (sc *sessionContext) theFleetIsMergedInto(from, to int) error {
	_, sc.cmdErr = sc.send(&game.MergeFleetsCommand{
		From: shared.SolarSystemID(from),
		To:   shared.SolarSystemID(to),
	})
	return nil
}

func (sc *sessionContext) homeworldsAreRequested() error {
	_, sc.cmdErr = sc.send(&game.SetHomeworldsCommand{})
	return nil
}

// Then steps

func (sc *sessionContext) theCommandSucceeds() error {
	if sc.cmdErr != nil {
		return fmt.Errorf("expected command to succeed, got: %w", sc.cmdErr)
	}
	return nil
}

func (sc *sessionContext) theCommandFailsWithInsufficientShips() error {
	var insufficient *shared.InsufficientShipsError
	if !errors.As(sc.cmdErr, &insufficient) {
		return fmt.Errorf("expected insufficient ships error, got: %v", sc.cmdErr)
	}
	return nil
}

func (sc *sessionContext) theCommandFailsWithInvalidPlayerCount() error {
	var invalid *shared.InvalidPlayerCountError
	if !errors.As(sc.cmdErr, &invalid) {
		return fmt.Errorf("expected invalid player count error, got: %v", sc.cmdErr)
	}
	return nil
}

func (sc *sessionContext) playerHasResources(playerID, food, technology, gold int) error {
	resp, err := sc.send(&game.ListPlayersQuery{})
	if err != nil {
		return err
	}
	players, ok := resp.(*game.ListPlayersResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}

	want := shared.NewResources(int32(food), int32(technology), int32(gold))
	for _, p := range players.Players {
		if p.PlayerID != shared.PlayerID(playerID) {
			continue
		}
		if p.Resources != want {
			return fmt.Errorf("expected player %d to hold %s, got %s", playerID, want, p.Resources)
		}
		return nil
	}
	return fmt.Errorf("player %d not found", playerID)
}

// thePlayersHold checks every row of a | player | food | technology | gold | table
func (sc *sessionContext) thePlayersHold(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one player row")
	}

	for _, row := range table.Rows[1:] {
		values := make([]int, 0, 4)
		for _, column := range []string{"player", "food", "technology", "gold"} {
			n, err := strconv.Atoi(getCellValue(table, row, column))
			if err != nil {
				return fmt.Errorf("invalid %s cell: %w", column, err)
			}
			values = append(values, n)
		}
		if err := sc.playerHasResources(values[0], values[1], values[2], values[3]); err != nil {
			return err
		}
	}
	return nil
}

func (sc *sessionContext) systemHasShipsStationed(id, expected int, className string) error {
	got, err := sc.systemFleetCount(id, className)
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected %d %s ships at system %d, got %d", expected, className, id, got)
	}
	return nil
}

func (sc *sessionContext) systemHasNoFleet(id int) error {
	system, err := sc.session.Starmap().System(shared.SolarSystemID(id))
	if err != nil {
		return err
	}
	if system.Fleet() != nil {
		return fmt.Errorf("expected system %d to have no fleet, got %d ships", id, system.Fleet().Size())
	}
	return nil
}

func (sc *sessionContext) historyRowsAreStored(expected int) error {
	var count int64
	err := helpers.SharedTestDB.
		Model(&persistence.StepRecordModel{}).
		Where("session_id = ?", sc.session.SessionID()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d history rows, got %d", expected, count)
	}
	return nil
}

func (sc *sessionContext) theRecordedGoldIs(playerID int, list string) error {
	if sc.history == nil {
		return fmt.Errorf("step history is not being recorded")
	}
	reports, err := sc.history.ListBySession(sc.ctx, sc.session.SessionID(), 0)
	if err != nil {
		return err
	}

	var got []string
	for _, report := range reports {
		for _, p := range report.Players {
			if p.PlayerID == shared.PlayerID(playerID) {
				got = append(got, fmt.Sprintf("%d", p.Resources.Gold))
			}
		}
	}
	if strings.Join(got, ", ") != list {
		return fmt.Errorf("expected recorded gold %s, got %s", list, strings.Join(got, ", "))
	}
	return nil
}

func (sc *sessionContext) theLastStepReportedTheError(message string) error {
	if sc.stepErr == nil || !strings.Contains(sc.stepErr.Error(), message) {
		return fmt.Errorf("expected step error containing %q, got: %v", message, sc.stepErr)
	}
	return nil
}

// getCellValue finds a cell by column name, using the first table row as the header
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

// InitializeSessionScenario registers session, gathering and history steps
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	sc := &sessionContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		if helpers.SharedTestDB != nil {
			if err := helpers.TruncateAllTables(); err != nil {
				return ctx, err
			}
		}
		return ctx, nil
	})

	ctx.Step(`^a session with (\d+) players using the "([^"]*)" gathering policy$`, sc.aSessionWithPlayers)
	ctx.Step(`^homeworlds are assigned$`, sc.homeworldsAreAssigned)
	ctx.Step(`^system (\d+) has an? (\w+)$`, sc.systemHasBuilding)
	ctx.Step(`^player (\d+) claims system (\d+)$`, sc.playerClaimsSystem)
	ctx.Step(`^system (\d+) is cleared$`, sc.systemIsCleared)
	ctx.Step(`^system (\d+) has (\d+) (\w+) ships$`, sc.systemHasShips)
	ctx.Step(`^step history is recorded$`, sc.stepHistoryIsRecorded)
	ctx.Step(`^an observer that fails with "([^"]*)"$`, sc.anObserverThatFailsWith)

	ctx.Step(`^(\d+) steps are run$`, sc.stepsAreRun)
	ctx.Step(`^(\d+) (\w+) ships are transferred from system (\d+) to system (\d+)$`, sc.shipsAreTransferred)
	ctx.Step(`^the fleet of system (\d+) is merged into system (\d+)$`, sc.theFleetIsMergedInto)
	ctx.Step(`^homeworlds are requested$`, sc.homeworldsAreRequested)

	ctx.Step(`^the command succeeds$`, sc.theCommandSucceeds)
	ctx.Step(`^the command fails with insufficient ships$`, sc.theCommandFailsWithInsufficientShips)
	ctx.Step(`^the command fails with an invalid player count$`, sc.theCommandFailsWithInvalidPlayerCount)
	ctx.Step(`^player (\d+) has (-?\d+) food, (-?\d+) technology and (-?\d+) gold$`, sc.playerHasResources)
	ctx.Step(`^the players hold:$`, sc.thePlayersHold)
	ctx.Step(`^system (\d+) has (\d+) (\w+) ships stationed$`, sc.systemHasShipsStationed)
	ctx.Step(`^system (\d+) has no fleet$`, sc.systemHasNoFleet)
	ctx.Step(`^(\d+) history rows are stored$`, sc.historyRowsAreStored)
	ctx.Step(`^the recorded gold of player (\d+) is ([\d, ]+)$`, sc.theRecordedGoldIs)
	ctx.Step(`^the last step reported the error "([^"]*)"$`, sc.theLastStepReportedTheError)
}
