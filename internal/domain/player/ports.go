package player

import (
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// OwnershipSnapshot is the read-only starmap view a gathering pass needs.
// *galaxy.Starmap satisfies it.
type OwnershipSnapshot interface {
	SystemsOwnedBy(player shared.PlayerID) []*galaxy.SolarSystem
}

var _ OwnershipSnapshot = (*galaxy.Starmap)(nil)
