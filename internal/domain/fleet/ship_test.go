package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
)

func TestNewShip_StatsTable(t *testing.T) {
	tests := []struct {
		class                 fleet.ShipClass
		health, speed, damage uint32
	}{
		{fleet.ShipClassColony, 100, 10, 10},
		{fleet.ShipClassScout, 50, 30, 5},
		{fleet.ShipClassFighter, 150, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			ship := fleet.NewShip(tt.class)

			assert.Equal(t, tt.class, ship.Class())
			assert.Equal(t, tt.health, ship.Health())
			assert.Equal(t, tt.speed, ship.Speed())
			assert.Equal(t, tt.damage, ship.Damage())
		})
	}
}

func TestParseShipClass(t *testing.T) {
	class, err := fleet.ParseShipClass("Scout")
	require.NoError(t, err)
	assert.Equal(t, fleet.ShipClassScout, class)

	_, err = fleet.ParseShipClass("Dreadnought")
	assert.Error(t, err)
}
