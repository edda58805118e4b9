package galaxy

import (
	"sort"

	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// HomeworldPlayers is the only player count homeworld assignment supports
const HomeworldPlayers = 2

// Homeworld system ids for the first and second player
const (
	FirstHomeworld  shared.SolarSystemID = 0
	SecondHomeworld shared.SolarSystemID = 8
)

// Link is one directed entry of the neighbour relation
type Link struct {
	From shared.SolarSystemID
	To   shared.SolarSystemID
}

// Starmap is the galaxy graph: an arena of systems keyed by id and a
// neighbour relation over id pairs.
//
// Invariants:
// - Every id in the neighbour relation exists in the arena
// - Each undirected link is stored as two directed entries
type Starmap struct {
	systems    map[shared.SolarSystemID]*SolarSystem
	neighbours map[Link]struct{}
}

// NewStarmap creates an empty starmap
func NewStarmap() *Starmap {
	return &Starmap{
		systems:    make(map[shared.SolarSystemID]*SolarSystem),
		neighbours: make(map[Link]struct{}),
	}
}

// AddSystem adds a system to the arena, replacing any system with the same id
func (m *Starmap) AddSystem(system *SolarSystem) {
	m.systems[system.ID()] = system
}

// Connect adds an undirected link between two existing systems
func (m *Starmap) Connect(a, b shared.SolarSystemID) error {
	if _, err := m.System(a); err != nil {
		return err
	}
	if _, err := m.System(b); err != nil {
		return err
	}
	if a == b {
		return shared.NewValidationError("neighbours", "a system cannot neighbour itself")
	}

	m.neighbours[Link{From: a, To: b}] = struct{}{}
	m.neighbours[Link{From: b, To: a}] = struct{}{}
	return nil
}

// System retrieves a system by id
func (m *Starmap) System(id shared.SolarSystemID) (*SolarSystem, error) {
	system, exists := m.systems[id]
	if !exists {
		return nil, shared.NewUnknownSystemError(id)
	}
	return system, nil
}

// HasSystem checks if a system exists in the starmap
func (m *Starmap) HasSystem(id shared.SolarSystemID) bool {
	_, exists := m.systems[id]
	return exists
}

// Systems returns every system ordered by id
func (m *Starmap) Systems() []*SolarSystem {
	systems := make([]*SolarSystem, 0, len(m.systems))
	for _, system := range m.systems {
		systems = append(systems, system)
	}
	sort.Slice(systems, func(i, j int) bool {
		return systems[i].ID() < systems[j].ID()
	})
	return systems
}

// Neighbours returns every directed neighbour entry ordered by (From, To)
func (m *Starmap) Neighbours() []Link {
	links := make([]Link, 0, len(m.neighbours))
	for link := range m.neighbours {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}
		return links[i].To < links[j].To
	})
	return links
}

// NeighboursOf returns the ids adjacent to id, ordered
func (m *Starmap) NeighboursOf(id shared.SolarSystemID) ([]shared.SolarSystemID, error) {
	if !m.HasSystem(id) {
		return nil, shared.NewUnknownSystemError(id)
	}

	var ids []shared.SolarSystemID
	for _, link := range m.Neighbours() {
		if link.From == id {
			ids = append(ids, link.To)
		}
	}
	return ids, nil
}

// AreNeighbours checks whether a and b are linked
func (m *Starmap) AreNeighbours(a, b shared.SolarSystemID) bool {
	_, exists := m.neighbours[Link{From: a, To: b}]
	return exists
}

// SystemsOwnedBy returns the systems owned by player, ordered by id
func (m *Starmap) SystemsOwnedBy(player shared.PlayerID) []*SolarSystem {
	var owned []*SolarSystem
	for _, system := range m.Systems() {
		if system.IsOwnedBy(player) {
			owned = append(owned, system)
		}
	}
	return owned
}

// SystemCount returns the number of systems in the starmap
func (m *Starmap) SystemCount() int {
	return len(m.systems)
}

// NeighbourCount returns the number of directed neighbour entries
func (m *Starmap) NeighbourCount() int {
	return len(m.neighbours)
}

// SetHomeworlds gives system 0 to the first player and system 8 to the
// second, each with a GoldMine. Nothing changes unless exactly two players
// are given and both homeworld systems exist.
func (m *Starmap) SetHomeworlds(players []shared.PlayerID) error {
	if len(players) != HomeworldPlayers {
		return shared.NewInvalidPlayerCountError(HomeworldPlayers, len(players))
	}

	first, err := m.System(FirstHomeworld)
	if err != nil {
		return err
	}
	second, err := m.System(SecondHomeworld)
	if err != nil {
		return err
	}

	first.SetHomeworld(players[0])
	second.SetHomeworld(players[1])
	return nil
}
