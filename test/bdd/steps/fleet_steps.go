package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

type fleetContext struct {
	fleets  map[string]*fleet.Fleet
	ship    fleet.Ship
	moveErr error
}

func (fc *fleetContext) reset() {
	fc.fleets = make(map[string]*fleet.Fleet)
	fc.ship = fleet.Ship{}
	fc.moveErr = nil
}

func (fc *fleetContext) fleet(name string) (*fleet.Fleet, error) {
	f, ok := fc.fleets[name]
	if !ok {
		return nil, fmt.Errorf("fleet %q was never created", name)
	}
	return f, nil
}

// Given steps

func (fc *fleetContext) aFleetWithShips(name string, count int, className string) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	f := fleet.NewFleet()
	for i := 0; i < count; i++ {
		f.Add(fleet.NewShip(class))
	}
	fc.fleets[name] = f
	return nil
}

func (fc *fleetContext) anEmptyFleet(name string) error {
	fc.fleets[name] = fleet.NewFleet()
	return nil
}

func (fc *fleetContext) aNewShip(className string) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	fc.ship = fleet.NewShip(class)
	return nil
}

// When steps

func (fc *fleetContext) fleetIsMergedInto(src, dst string) error {
	from, err := fc.fleet(src)
	if err != nil {
		return err
	}
	to, err := fc.fleet(dst)
	if err != nil {
		return err
	}
	to.Merge(from)
	return nil
}

func (fc *fleetContext) shipsAreMoved(count int, className, src, dst string) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	from, err := fc.fleet(src)
	if err != nil {
		return err
	}
	to, err := fc.fleet(dst)
	if err != nil {
		return err
	}
	fc.moveErr = from.MoveTo(to, count, class)
	return nil
}

// Then steps

func (fc *fleetContext) fleetHasShips(name string, expected int) error {
	f, err := fc.fleet(name)
	if err != nil {
		return err
	}
	if f.Size() != expected {
		return fmt.Errorf("expected fleet %q to hold %d ships, got %d", name, expected, f.Size())
	}
	return nil
}

func (fc *fleetContext) fleetHasShipsOfClass(name string, expected int, className string) error {
	class, err := fleet.ParseShipClass(className)
	if err != nil {
		return err
	}
	f, err := fc.fleet(name)
	if err != nil {
		return err
	}
	if got := f.Count(class); got != expected {
		return fmt.Errorf("expected fleet %q to hold %d %s ships, got %d", name, expected, class, got)
	}
	return nil
}

func (fc *fleetContext) theMoveSucceeds() error {
	if fc.moveErr != nil {
		return fmt.Errorf("expected move to succeed, got: %w", fc.moveErr)
	}
	return nil
}

func (fc *fleetContext) theMoveFailsWithInsufficientShips(requested, available int) error {
	var insufficient *shared.InsufficientShipsError
	if !errors.As(fc.moveErr, &insufficient) {
		return fmt.Errorf("expected insufficient ships error, got: %v", fc.moveErr)
	}
	if insufficient.Requested != requested || insufficient.Available != available {
		return fmt.Errorf("expected %d of %d, got %d of %d",
			requested, available, insufficient.Requested, insufficient.Available)
	}
	return nil
}

func (fc *fleetContext) theShipHasStats(health, speed, damage int) error {
	got := [3]uint32{fc.ship.Health(), fc.ship.Speed(), fc.ship.Damage()}
	want := [3]uint32{uint32(health), uint32(speed), uint32(damage)}
	if got != want {
		return fmt.Errorf("expected health/speed/damage %v, got %v", want, got)
	}
	return nil
}

// InitializeFleetScenario registers fleet composition steps
func InitializeFleetScenario(ctx *godog.ScenarioContext) {
	fc := &fleetContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	ctx.Step(`^a fleet "([^"]*)" with (\d+) (\w+) ships?$`, fc.aFleetWithShips)
	ctx.Step(`^an empty fleet "([^"]*)"$`, fc.anEmptyFleet)
	ctx.Step(`^a new (\w+) ship$`, fc.aNewShip)

	ctx.Step(`^fleet "([^"]*)" is merged into fleet "([^"]*)"$`, fc.fleetIsMergedInto)
	ctx.Step(`^(\d+) (\w+) ships are moved from fleet "([^"]*)" to fleet "([^"]*)"$`, fc.shipsAreMoved)

	ctx.Step(`^fleet "([^"]*)" has (\d+) ships$`, fc.fleetHasShips)
	ctx.Step(`^fleet "([^"]*)" has (\d+) (\w+) ships$`, fc.fleetHasShipsOfClass)
	ctx.Step(`^the move succeeds$`, fc.theMoveSucceeds)
	ctx.Step(`^the move fails with insufficient ships requesting (\d+) of (\d+)$`, fc.theMoveFailsWithInsufficientShips)
	ctx.Step(`^the ship has health (\d+), speed (\d+) and damage (\d+)$`, fc.theShipHasStats)
}
