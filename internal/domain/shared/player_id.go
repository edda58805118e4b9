package shared

import "fmt"

// PlayerID identifies a player within a session. Zero is a valid id.
type PlayerID uint32

// Value returns the integer value of the PlayerID
func (p PlayerID) Value() uint32 {
	return uint32(p)
}

// String returns a string representation of the PlayerID
func (p PlayerID) String() string {
	return fmt.Sprintf("%d", uint32(p))
}

// Equals checks if two PlayerIDs are equal
func (p PlayerID) Equals(other PlayerID) bool {
	return p == other
}

// SolarSystemID identifies a solar system within a starmap
type SolarSystemID uint32

// Value returns the integer value of the SolarSystemID
func (s SolarSystemID) Value() uint32 {
	return uint32(s)
}

// String returns a string representation of the SolarSystemID
func (s SolarSystemID) String() string {
	return fmt.Sprintf("#%d", uint32(s))
}
