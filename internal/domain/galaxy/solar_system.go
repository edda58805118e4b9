package galaxy

import (
	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// Location is a grid position on the starmap
type Location struct {
	X uint32
	Y uint32
}

// SolarSystem holds one location's ownership, building and fleet state.
//
// Ownership and building presence are independent: a system may have a
// building without an owner and an owner without a building.
type SolarSystem struct {
	id       shared.SolarSystemID
	location Location
	owner    *shared.PlayerID
	building *building.Building
	fleet    *fleet.Fleet
}

// NewSolarSystem creates an unowned, empty system at the given location
func NewSolarSystem(id shared.SolarSystemID, location Location) *SolarSystem {
	return &SolarSystem{id: id, location: location}
}

// Getters

func (s *SolarSystem) ID() shared.SolarSystemID {
	return s.id
}

func (s *SolarSystem) Location() Location {
	return s.location
}

// Owner returns the owning player, if any
func (s *SolarSystem) Owner() (shared.PlayerID, bool) {
	if s.owner == nil {
		return 0, false
	}
	return *s.owner, true
}

// IsOwnedBy reports whether player owns the system
func (s *SolarSystem) IsOwnedBy(player shared.PlayerID) bool {
	return s.owner != nil && *s.owner == player
}

// Building returns the current building, if any
func (s *SolarSystem) Building() (building.Building, bool) {
	if s.building == nil {
		return building.Building{}, false
	}
	return *s.building, true
}

// Fleet returns the stationed fleet or nil
func (s *SolarSystem) Fleet() *fleet.Fleet {
	return s.fleet
}

// Commands

// SetOwner assigns the system to player without touching its building
func (s *SolarSystem) SetOwner(player shared.PlayerID) {
	s.owner = &player
}

// SetHomeworld makes the system player's homeworld: owner first, then a GoldMine
func (s *SolarSystem) SetHomeworld(player shared.PlayerID) {
	s.SetOwner(player)
	s.Build(building.ClassGoldMine)
}

// Build replaces the current building with a new one of class
func (s *SolarSystem) Build(class building.Class) {
	b := building.New(class)
	s.building = &b
}

// Station places f at the system, replacing any fleet already stationed
func (s *SolarSystem) Station(f *fleet.Fleet) {
	s.fleet = f
}

// EnsureFleet returns the stationed fleet, stationing an empty one if needed
func (s *SolarSystem) EnsureFleet() *fleet.Fleet {
	if s.fleet == nil {
		s.fleet = fleet.NewFleet()
	}
	return s.fleet
}

// Clear drops the building, owner and fleet together (loss of control)
func (s *SolarSystem) Clear() {
	s.building = nil
	s.owner = nil
	s.fleet = nil
}
