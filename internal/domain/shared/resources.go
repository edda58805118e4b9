package shared

import "fmt"

// Resources is the food/technology/gold quantity triple produced by buildings
// and held by players. The zero value is the additive identity.
//
// Stock may go negative; nothing in the domain clamps it.
type Resources struct {
	Food       int32 `json:"food"`
	Technology int32 `json:"technology"`
	Gold       int32 `json:"gold"`
}

// NewResources creates a Resources value
func NewResources(food, technology, gold int32) Resources {
	return Resources{Food: food, Technology: technology, Gold: gold}
}

// Add returns the component-wise sum of r and other
func (r Resources) Add(other Resources) Resources {
	return Resources{
		Food:       r.Food + other.Food,
		Technology: r.Technology + other.Technology,
		Gold:       r.Gold + other.Gold,
	}
}

// IsZero reports whether every component is zero
func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) String() string {
	return fmt.Sprintf("Resources(food=%d, technology=%d, gold=%d)", r.Food, r.Technology, r.Gold)
}
