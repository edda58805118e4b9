package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

type starmapContext struct {
	starmap      *galaxy.Starmap
	homeworldErr error
	lookupErr    error
}

func (sc *starmapContext) reset() {
	sc.starmap = nil
	sc.homeworldErr = nil
	sc.lookupErr = nil
}

func parseIDList(list string) ([]shared.PlayerID, error) {
	var ids []shared.PlayerID
	for _, part := range strings.Split(list, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q: %w", part, err)
		}
		ids = append(ids, shared.PlayerID(n))
	}
	return ids, nil
}

func (sc *starmapContext) aGeneratedUniverse() error {
	sc.starmap = galaxy.GenerateUniverse()
	return nil
}

func (sc *starmapContext) homeworldsAreSetFor(list string) error {
	players, err := parseIDList(list)
	if err != nil {
		return err
	}
	sc.homeworldErr = sc.starmap.SetHomeworlds(players)
	return nil
}

func (sc *starmapContext) systemIsLookedUp(id int) error {
	_, sc.lookupErr = sc.starmap.System(shared.SolarSystemID(id))
	return nil
}

func (sc *starmapContext) theStarmapHas(systems, entries int) error {
	if sc.starmap.SystemCount() != systems {
		return fmt.Errorf("expected %d systems, got %d", systems, sc.starmap.SystemCount())
	}
	if sc.starmap.NeighbourCount() != entries {
		return fmt.Errorf("expected %d neighbour entries, got %d", entries, sc.starmap.NeighbourCount())
	}
	return nil
}

func (sc *starmapContext) systemsAreNeighbours(a, b int) error {
	if !sc.starmap.AreNeighbours(shared.SolarSystemID(a), shared.SolarSystemID(b)) {
		return fmt.Errorf("expected systems %d and %d to be neighbours", a, b)
	}
	return nil
}

func (sc *starmapContext) systemsAreNotNeighbours(a, b int) error {
	if sc.starmap.AreNeighbours(shared.SolarSystemID(a), shared.SolarSystemID(b)) {
		return fmt.Errorf("expected systems %d and %d not to be neighbours", a, b)
	}
	return nil
}

func (sc *starmapContext) systemIsAtLocation(id, x, y int) error {
	system, err := sc.starmap.System(shared.SolarSystemID(id))
	if err != nil {
		return err
	}
	want := galaxy.Location{X: uint32(x), Y: uint32(y)}
	if system.Location() != want {
		return fmt.Errorf("expected system %d at %v, got %v", id, want, system.Location())
	}
	return nil
}

func (sc *starmapContext) theHomeworldAssignmentSucceeds() error {
	if sc.homeworldErr != nil {
		return fmt.Errorf("expected homeworld assignment to succeed, got: %w", sc.homeworldErr)
	}
	return nil
}

func (sc *starmapContext) systemIsOwnedByWith(id, owner int, buildingName string) error {
	system, err := sc.starmap.System(shared.SolarSystemID(id))
	if err != nil {
		return err
	}
	got, ok := system.Owner()
	if !ok || got != shared.PlayerID(owner) {
		return fmt.Errorf("expected system %d owned by player %d", id, owner)
	}
	b, ok := system.Building()
	if !ok || b.Class().Name() != buildingName {
		return fmt.Errorf("expected system %d to have a %s", id, buildingName)
	}
	return nil
}

func (sc *starmapContext) systemsAreUnowned(expected int) error {
	unowned := 0
	for _, system := range sc.starmap.Systems() {
		if _, ok := system.Owner(); !ok {
			unowned++
		}
	}
	if unowned != expected {
		return fmt.Errorf("expected %d unowned systems, got %d", expected, unowned)
	}
	return nil
}

func (sc *starmapContext) settingHomeworldsFailsWith(got int) error {
	var invalid *shared.InvalidPlayerCountError
	if !errors.As(sc.homeworldErr, &invalid) {
		return fmt.Errorf("expected invalid player count error, got: %v", sc.homeworldErr)
	}
	if invalid.Got != got {
		return fmt.Errorf("expected player count %d in error, got %d", got, invalid.Got)
	}
	return nil
}

func (sc *starmapContext) theLookupFailsWith(id int) error {
	var unknown *shared.UnknownSystemError
	if !errors.As(sc.lookupErr, &unknown) {
		return fmt.Errorf("expected unknown system error, got: %v", sc.lookupErr)
	}
	if unknown.ID != shared.SolarSystemID(id) {
		return fmt.Errorf("expected unknown system %d, got %s", id, unknown.ID)
	}
	return nil
}

func (sc *starmapContext) systemIsDrawnAt(id, x, y int) error {
	for _, marker := range sc.starmap.Layout().Markers {
		if marker.ID != shared.SolarSystemID(id) {
			continue
		}
		if marker.X != x || marker.Y != y {
			return fmt.Errorf("expected marker %d at (%d, %d), got (%d, %d)", id, x, y, marker.X, marker.Y)
		}
		return nil
	}
	return fmt.Errorf("no marker for system %d", id)
}

func (sc *starmapContext) theLinkIsDrawn(from, to, x1, y1, x2, y2 int) error {
	link := galaxy.Link{From: shared.SolarSystemID(from), To: shared.SolarSystemID(to)}
	for _, line := range sc.starmap.Layout().Lines {
		if line.Link != link {
			continue
		}
		start := galaxy.Point{X: x1, Y: y1}
		end := galaxy.Point{X: x2, Y: y2}
		if line.Start != start || line.End != end {
			return fmt.Errorf("expected line %v-%v, got %v-%v", start, end, line.Start, line.End)
		}
		return nil
	}
	return fmt.Errorf("no line from %d to %d", from, to)
}

func (sc *starmapContext) theFingerprintMatchesAFreshUniverse() error {
	want := galaxy.GenerateUniverse().Fingerprint()
	if got := sc.starmap.Fingerprint(); got != want {
		return fmt.Errorf("expected fingerprint %s, got %s", want, got)
	}
	return nil
}

// InitializeStarmapScenario registers universe generation and layout steps
func InitializeStarmapScenario(ctx *godog.ScenarioContext) {
	sc := &starmapContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	ctx.Step(`^a generated universe$`, sc.aGeneratedUniverse)

	ctx.Step(`^homeworlds are set for players ([\d, ]+)$`, sc.homeworldsAreSetFor)
	ctx.Step(`^system (\d+) is looked up$`, sc.systemIsLookedUp)

	ctx.Step(`^the starmap has (\d+) systems and (\d+) neighbour entries$`, sc.theStarmapHas)
	ctx.Step(`^systems (\d+) and (\d+) are neighbours$`, sc.systemsAreNeighbours)
	ctx.Step(`^systems (\d+) and (\d+) are not neighbours$`, sc.systemsAreNotNeighbours)
	ctx.Step(`^system (\d+) is at location \((\d+), (\d+)\)$`, sc.systemIsAtLocation)
	ctx.Step(`^the homeworld assignment succeeds$`, sc.theHomeworldAssignmentSucceeds)
	ctx.Step(`^system (\d+) is owned by player (\d+) with a (\w+)$`, sc.systemIsOwnedByWith)
	ctx.Step(`^(\d+) systems are unowned$`, sc.systemsAreUnowned)
	ctx.Step(`^setting homeworlds fails with an invalid player count of (\d+)$`, sc.settingHomeworldsFailsWith)
	ctx.Step(`^the lookup fails with unknown system (\d+)$`, sc.theLookupFailsWith)
	ctx.Step(`^system (\d+) is drawn at \((\d+), (\d+)\)$`, sc.systemIsDrawnAt)
	ctx.Step(`^the link from (\d+) to (\d+) is drawn from \((\d+), (\d+)\) to \((\d+), (\d+)\)$`, sc.theLinkIsDrawn)
	ctx.Step(`^the fingerprint matches a freshly generated universe$`, sc.theFingerprintMatchesAFreshUniverse)
}
