package building_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

func TestBuilding_ProductionTable(t *testing.T) {
	tests := []struct {
		class building.Class
		want  shared.Resources
	}{
		{building.ClassFarm, shared.NewResources(5, 0, 0)},
		{building.ClassLaboratory, shared.NewResources(0, 2, 0)},
		{building.ClassGoldMine, shared.NewResources(0, 0, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			b := building.New(tt.class)

			assert.Equal(t, tt.class, b.Class())
			assert.Equal(t, tt.want, b.Produce())
			// Repeated construction yields the same production
			assert.Equal(t, b.Produce(), building.New(tt.class).Produce())
		})
	}
}

func TestParseClass(t *testing.T) {
	for _, class := range building.Classes() {
		parsed, err := building.ParseClass(class.Name())
		require.NoError(t, err)
		assert.Equal(t, class, parsed)
	}

	parsed, err := building.ParseClass("goldmine")
	require.NoError(t, err)
	assert.Equal(t, building.ClassGoldMine, parsed)

	_, err = building.ParseClass("Shipyard")
	assert.Error(t, err)
}
