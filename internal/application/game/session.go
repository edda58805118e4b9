package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/player"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
	"github.com/andrescamacho/spaceempire-go/pkg/utils"
)

// DefaultPlayers is the number of players in a session unless overridden
const DefaultPlayers = galaxy.HomeworldPlayers

// SpaceEmpire is one game session: a generated starmap and a fixed set of players.
// It is not safe for concurrent use.
type SpaceEmpire struct {
	sessionID string
	starmap   *galaxy.Starmap
	players   []*player.Player
	clock     shared.Clock
	observers []StepObserver
	sequence  uint64
}

type options struct {
	players   int
	policy    player.GatheringPolicy
	clock     shared.Clock
	observers []StepObserver
	sessionID string
}

// Option configures a SpaceEmpire
type Option func(*options)

// WithPlayers sets the number of players
func WithPlayers(n int) Option {
	return func(o *options) {
		o.players = n
	}
}

// WithGatheringPolicy selects how players fold production into their totals
func WithGatheringPolicy(policy player.GatheringPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithClock injects the clock used to timestamp step reports
func WithClock(clock shared.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithObservers appends step observers, notified in registration order
func WithObservers(observers ...StepObserver) Option {
	return func(o *options) {
		o.observers = append(o.observers, observers...)
	}
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) Option {
	return func(o *options) {
		o.sessionID = id
	}
}

// NewSpaceEmpire generates the universe and creates players with zero resources.
// Homeworlds are not assigned; call SetHomeworlds for that.
func NewSpaceEmpire(opts ...Option) (*SpaceEmpire, error) {
	o := options{
		players: DefaultPlayers,
		policy:  player.GatheringReset,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.players < 0 {
		return nil, shared.NewValidationError("players", fmt.Sprintf("must not be negative, got %d", o.players))
	}
	if o.clock == nil {
		o.clock = shared.NewRealClock()
	}
	if o.sessionID == "" {
		o.sessionID = utils.GenerateSessionID()
	}

	return &SpaceEmpire{
		sessionID: o.sessionID,
		starmap:   galaxy.GenerateUniverse(),
		players:   player.CreatePlayers(o.players, o.policy),
		clock:     o.clock,
		observers: o.observers,
	}, nil
}

func (g *SpaceEmpire) SessionID() string {
	return g.sessionID
}

func (g *SpaceEmpire) Starmap() *galaxy.Starmap {
	return g.starmap
}

// Players returns the session's players in id order
func (g *SpaceEmpire) Players() []*player.Player {
	result := make([]*player.Player, len(g.players))
	copy(result, g.players)
	return result
}

// Player looks up a player by id
func (g *SpaceEmpire) Player(id shared.PlayerID) (*player.Player, error) {
	for _, p := range g.players {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, shared.NewValidationError("player_id", fmt.Sprintf("unknown player %s", id))
}

// PlayerIDs returns the ids of all players in order
func (g *SpaceEmpire) PlayerIDs() []shared.PlayerID {
	ids := make([]shared.PlayerID, 0, len(g.players))
	for _, p := range g.players {
		ids = append(ids, p.ID())
	}
	return ids
}

// AddObserver registers another step observer
func (g *SpaceEmpire) AddObserver(observer StepObserver) {
	g.observers = append(g.observers, observer)
}

// SetHomeworlds gives the first player system 0 and the second system 8,
// each with a GoldMine. It fails unless the session has exactly two players.
func (g *SpaceEmpire) SetHomeworlds() error {
	return g.starmap.SetHomeworlds(g.PlayerIDs())
}

// Step runs one gathering pass for every player and notifies observers.
// Observer errors are joined and returned after all observers ran; the
// gathering has already taken effect by then.
func (g *SpaceEmpire) Step(ctx context.Context) (*StepReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]PlayerReport, 0, len(g.players))
	for _, p := range g.players {
		reports = append(reports, PlayerReport{
			PlayerID:  p.ID(),
			Resources: p.GatherResources(g.starmap),
		})
	}

	g.sequence++
	report := &StepReport{
		SessionID:   g.sessionID,
		Sequence:    g.sequence,
		Timestamp:   g.clock.Now(),
		Fingerprint: g.starmap.Fingerprint(),
		Players:     reports,
	}

	var errs []error
	for _, observer := range g.observers {
		if err := observer.ObserveStep(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}

	return report, errors.Join(errs...)
}

// Build replaces the building on a system
func (g *SpaceEmpire) Build(id shared.SolarSystemID, class building.Class) error {
	system, err := g.starmap.System(id)
	if err != nil {
		return err
	}
	system.Build(class)
	return nil
}

// Claim sets the owner of a system without touching its building
func (g *SpaceEmpire) Claim(id shared.SolarSystemID, owner shared.PlayerID) error {
	if _, err := g.Player(owner); err != nil {
		return err
	}
	system, err := g.starmap.System(id)
	if err != nil {
		return err
	}
	system.SetOwner(owner)
	return nil
}

// ClearSystem removes the owner, building and fleet of a system
func (g *SpaceEmpire) ClearSystem(id shared.SolarSystemID) error {
	system, err := g.starmap.System(id)
	if err != nil {
		return err
	}
	system.Clear()
	return nil
}

// AddShips adds count new ships of class to the system's fleet, creating the fleet if needed
func (g *SpaceEmpire) AddShips(id shared.SolarSystemID, class fleet.ShipClass, count int) error {
	if count < 0 {
		return shared.NewValidationError("count", fmt.Sprintf("must not be negative, got %d", count))
	}
	system, err := g.starmap.System(id)
	if err != nil {
		return err
	}
	f := system.EnsureFleet()
	for i := 0; i < count; i++ {
		f.Add(fleet.NewShip(class))
	}
	return nil
}

// TransferShips moves count ships of class from one system's fleet to another's.
// The destination fleet is created only when the transfer succeeds.
func (g *SpaceEmpire) TransferShips(from, to shared.SolarSystemID, class fleet.ShipClass, count int) error {
	src, err := g.starmap.System(from)
	if err != nil {
		return err
	}
	dst, err := g.starmap.System(to)
	if err != nil {
		return err
	}

	srcFleet := src.Fleet()
	if srcFleet == nil {
		srcFleet = fleet.NewFleet()
	}
	if count < 0 || count > srcFleet.Count(class) {
		return shared.NewInsufficientShipsError(class.Name(), count, srcFleet.Count(class))
	}
	if count == 0 {
		return nil
	}

	return srcFleet.MoveTo(dst.EnsureFleet(), count, class)
}

// MergeFleets drains the fleet of one system into the fleet of another
func (g *SpaceEmpire) MergeFleets(from, to shared.SolarSystemID) error {
	src, err := g.starmap.System(from)
	if err != nil {
		return err
	}
	dst, err := g.starmap.System(to)
	if err != nil {
		return err
	}
	if src.Fleet() == nil || from == to {
		return nil
	}
	dst.EnsureFleet().Merge(src.Fleet())
	return nil
}
