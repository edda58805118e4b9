package fleet

import (
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// Location describes where a fleet is
type Location int

const (
	// LocationSomewhere is a fleet stationed at its current system
	LocationSomewhere Location = iota
	// LocationMoving is a fleet in transit. Declared for future use; no
	// operation moves a fleet into or out of this state yet.
	LocationMoving
)

func (l Location) String() string {
	switch l {
	case LocationSomewhere:
		return "SOMEWHERE"
	case LocationMoving:
		return "MOVING"
	default:
		return "UNKNOWN"
	}
}

// Fleet is a bag of ships grouped by class.
//
// Invariants:
// - Within a class, ships are kept in insertion order and the most recently
//   added ship is the first to leave on a transfer
// - A class with no entry counts as zero ships
// - MoveTo is all-or-nothing
type Fleet struct {
	ships    map[ShipClass][]Ship
	location Location
}

// NewFleet creates an empty stationary fleet
func NewFleet() *Fleet {
	return &Fleet{
		ships:    make(map[ShipClass][]Ship),
		location: LocationSomewhere,
	}
}

// Location returns the fleet location mode
func (f *Fleet) Location() Location {
	return f.location
}

// Add appends a ship to the collection of its class
func (f *Fleet) Add(ship Ship) {
	f.ships[ship.Class()] = append(f.ships[ship.Class()], ship)
}

// Merge drains other into f, preserving the per-class order of other
func (f *Fleet) Merge(other *Fleet) {
	if other == nil || other == f {
		return
	}
	for _, ships := range other.ships {
		for _, ship := range ships {
			f.Add(ship)
		}
	}
	other.ships = make(map[ShipClass][]Ship)
}

// Size returns the total ship count across all classes
func (f *Fleet) Size() int {
	count := 0
	for _, ships := range f.ships {
		count += len(ships)
	}
	return count
}

// Count returns the number of ships of one class (0 when the class is absent)
func (f *Fleet) Count(class ShipClass) int {
	return len(f.ships[class])
}

// IsEmpty reports whether the fleet holds no ships
func (f *Fleet) IsEmpty() bool {
	return f.Size() == 0
}

// Ships returns a copy of the ships of one class in insertion order
func (f *Fleet) Ships(class ShipClass) []Ship {
	return append([]Ship(nil), f.ships[class]...)
}

// Composition returns the per-class ship counts, omitting empty classes
func (f *Fleet) Composition() map[ShipClass]int {
	composition := make(map[ShipClass]int)
	for class, ships := range f.ships {
		if len(ships) > 0 {
			composition[class] = len(ships)
		}
	}
	return composition
}

// MoveTo transfers exactly number ships of class from f to dst, last added first.
// Nothing moves when f holds fewer than number ships of that class.
func (f *Fleet) MoveTo(dst *Fleet, number int, class ShipClass) error {
	available := f.Count(class)
	if number < 0 || number > available {
		return shared.NewInsufficientShipsError(class.Name(), number, available)
	}
	if number == 0 || dst == f {
		return nil
	}

	ships := f.ships[class]
	for i := 0; i < number; i++ {
		last := len(ships) - 1
		dst.Add(ships[last])
		ships = ships[:last]
	}
	f.ships[class] = ships
	return nil
}
