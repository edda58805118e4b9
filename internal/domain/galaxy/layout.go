package galaxy

import "github.com/andrescamacho/spaceempire-go/internal/domain/shared"

// Render contract constants, in pixels
const (
	CellSize     = 80
	MarkerSize   = 50
	MarkerCenter = MarkerSize / 2
)

// Point is a pixel position
type Point struct {
	X int
	Y int
}

// SystemMarker is the square drawn for one system
type SystemMarker struct {
	ID     shared.SolarSystemID
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the middle of the marker
func (m SystemMarker) Center() Point {
	return Point{X: m.X + MarkerCenter, Y: m.Y + MarkerCenter}
}

// LinkLine is the line drawn for one neighbour entry
type LinkLine struct {
	Link
	Start Point
	End   Point
}

// Layout is what a renderer needs to draw the starmap
type Layout struct {
	Markers []SystemMarker
	Lines   []LinkLine
}

// Layout computes marker positions at location*CellSize and a line between
// the marker centres of every neighbour entry
func (m *Starmap) Layout() Layout {
	var layout Layout
	markers := make(map[shared.SolarSystemID]SystemMarker, len(m.systems))

	for _, system := range m.Systems() {
		marker := SystemMarker{
			ID:     system.ID(),
			X:      int(system.Location().X) * CellSize,
			Y:      int(system.Location().Y) * CellSize,
			Width:  MarkerSize,
			Height: MarkerSize,
		}
		markers[system.ID()] = marker
		layout.Markers = append(layout.Markers, marker)
	}

	for _, link := range m.Neighbours() {
		layout.Lines = append(layout.Lines, LinkLine{
			Link:  link,
			Start: markers[link.From].Center(),
			End:   markers[link.To].Center(),
		})
	}

	return layout
}
