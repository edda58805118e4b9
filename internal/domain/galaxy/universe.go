package galaxy

import "github.com/andrescamacho/spaceempire-go/internal/domain/shared"

const (
	// UniverseWidth is the number of grid columns in the generated universe
	UniverseWidth = 3
	// UniverseSize is the number of systems in the generated universe
	UniverseSize = 9
)

// universeLinks is the fixed undirected link list of the generated universe
var universeLinks = [][2]shared.SolarSystemID{
	{1, 3}, {0, 2}, {1, 5},
	{0, 6}, {2, 6}, {2, 8},
	{3, 7}, {6, 8}, {7, 5},
}

// GenerateUniverse builds the fixed 3x3 galaxy: systems 0..8 at
// (id mod 3, id div 3) joined by universeLinks. The result is the same on
// every call.
func GenerateUniverse() *Starmap {
	starmap := NewStarmap()

	for n := uint32(0); n < UniverseSize; n++ {
		location := Location{X: n % UniverseWidth, Y: n / UniverseWidth}
		starmap.AddSystem(NewSolarSystem(shared.SolarSystemID(n), location))
	}

	for _, link := range universeLinks {
		if err := starmap.Connect(link[0], link[1]); err != nil {
			// universeLinks only names ids created above
			panic(err)
		}
	}

	return starmap
}
