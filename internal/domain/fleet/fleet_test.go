package fleet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

func fleetOf(classes ...fleet.ShipClass) *fleet.Fleet {
	f := fleet.NewFleet()
	for _, class := range classes {
		f.Add(fleet.NewShip(class))
	}
	return f
}

func TestFleet_NewFleetIsStationaryAndEmpty(t *testing.T) {
	f := fleet.NewFleet()

	assert.Equal(t, fleet.LocationSomewhere, f.Location())
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Count(fleet.ShipClassColony))
}

func TestFleet_Merge(t *testing.T) {
	// Arrange
	a := fleetOf(fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassScout)
	b := fleetOf(fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassColony)

	// Act
	a.Merge(b)

	// Assert
	assert.Equal(t, 4, a.Count(fleet.ShipClassFighter))
	assert.Equal(t, 1, a.Count(fleet.ShipClassScout))
	assert.Equal(t, 1, a.Count(fleet.ShipClassColony))
	assert.Equal(t, 6, a.Size())
	assert.True(t, b.IsEmpty())
	assert.Equal(t, map[fleet.ShipClass]int{
		fleet.ShipClassFighter: 4,
		fleet.ShipClassScout:   1,
		fleet.ShipClassColony:  1,
	}, a.Composition())
}

func TestFleet_MergeWithItselfIsNoOp(t *testing.T) {
	a := fleetOf(fleet.ShipClassScout, fleet.ShipClassScout)

	a.Merge(a)
	a.Merge(nil)

	assert.Equal(t, 2, a.Size())
}

func TestFleet_MoveTo(t *testing.T) {
	// Arrange
	src := fleetOf(fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassFighter)
	dst := fleet.NewFleet()

	// Act
	err := src.MoveTo(dst, 3, fleet.ShipClassFighter)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, src.Count(fleet.ShipClassFighter))
	assert.Equal(t, 3, dst.Count(fleet.ShipClassFighter))
}

func TestFleet_MoveToInsufficientShipsIsAtomic(t *testing.T) {
	// Arrange
	src := fleetOf(fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassFighter, fleet.ShipClassFighter)
	dst := fleetOf(fleet.ShipClassScout)

	// Act
	err := src.MoveTo(dst, 5, fleet.ShipClassFighter)

	// Assert
	var insufficient *shared.InsufficientShipsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "Fighter", insufficient.Class)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 4, insufficient.Available)
	assert.Equal(t, 4, src.Count(fleet.ShipClassFighter))
	assert.Equal(t, 0, dst.Count(fleet.ShipClassFighter))
	assert.Equal(t, 1, dst.Size())
}

func TestFleet_MoveToAbsentClass(t *testing.T) {
	src := fleetOf(fleet.ShipClassScout)
	dst := fleet.NewFleet()

	// Zero ships always succeeds
	require.NoError(t, src.MoveTo(dst, 0, fleet.ShipClassColony))
	assert.True(t, dst.IsEmpty())

	// Any positive number fails like an insufficient count
	err := src.MoveTo(dst, 1, fleet.ShipClassColony)
	var insufficient *shared.InsufficientShipsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 1, src.Size())
}

func TestFleet_MoveToNegativeNumberFails(t *testing.T) {
	src := fleetOf(fleet.ShipClassScout)

	err := src.MoveTo(fleet.NewFleet(), -1, fleet.ShipClassScout)

	assert.Error(t, err)
	assert.Equal(t, 1, src.Size())
}

func TestFleet_MoveToAppendsToDestination(t *testing.T) {
	// Arrange
	src := fleetOf(fleet.ShipClassScout, fleet.ShipClassScout, fleet.ShipClassScout)
	dst := fleetOf(fleet.ShipClassColony, fleet.ShipClassScout)

	// Act
	require.NoError(t, src.MoveTo(dst, 2, fleet.ShipClassScout))

	// Assert
	assert.Len(t, src.Ships(fleet.ShipClassScout), 1)
	assert.Len(t, dst.Ships(fleet.ShipClassScout), 3)
	assert.Equal(t, 4, dst.Size())
}

func TestFleet_MoveToSelfIsNoOp(t *testing.T) {
	src := fleetOf(fleet.ShipClassFighter, fleet.ShipClassFighter)

	require.NoError(t, src.MoveTo(src, 2, fleet.ShipClassFighter))

	assert.Equal(t, 2, src.Count(fleet.ShipClassFighter))
}
