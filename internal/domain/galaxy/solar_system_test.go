package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

func TestSolarSystem_SetHomeworld(t *testing.T) {
	system := galaxy.NewSolarSystem(3, galaxy.Location{X: 0, Y: 1})

	system.SetHomeworld(7)

	owner, ok := system.Owner()
	require.True(t, ok)
	assert.Equal(t, shared.PlayerID(7), owner)
	assert.True(t, system.IsOwnedBy(7))
	assert.False(t, system.IsOwnedBy(0))

	b, ok := system.Building()
	require.True(t, ok)
	assert.Equal(t, shared.NewResources(0, 0, 8), b.Produce())
}

func TestSolarSystem_BuildReplaces(t *testing.T) {
	system := galaxy.NewSolarSystem(1, galaxy.Location{X: 1})

	system.Build(building.ClassFarm)
	system.Build(building.ClassLaboratory)

	b, ok := system.Building()
	require.True(t, ok)
	assert.Equal(t, building.ClassLaboratory, b.Class())
	// Building without owner is allowed
	_, owned := system.Owner()
	assert.False(t, owned)
}

func TestSolarSystem_Clear(t *testing.T) {
	system := galaxy.NewSolarSystem(0, galaxy.Location{})
	system.SetHomeworld(1)
	system.EnsureFleet().Add(fleet.NewShip(fleet.ShipClassScout))

	system.Clear()

	_, owned := system.Owner()
	_, built := system.Building()
	assert.False(t, owned)
	assert.False(t, built)
	assert.Nil(t, system.Fleet())
}

func TestSolarSystem_EnsureFleetKeepsExisting(t *testing.T) {
	system := galaxy.NewSolarSystem(0, galaxy.Location{})
	stationed := fleet.NewFleet()
	stationed.Add(fleet.NewShip(fleet.ShipClassColony))
	system.Station(stationed)

	got := system.EnsureFleet()

	assert.Same(t, stationed, got)
	assert.Equal(t, 1, got.Size())
}
