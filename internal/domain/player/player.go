package player

import (
	"fmt"

	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// GatheringPolicy decides the seed of a gathering pass
type GatheringPolicy int

const (
	// GatheringReset recomputes the total from zero on every pass, so the
	// player's resources equal the production of the systems owned right now
	GatheringReset GatheringPolicy = iota
	// GatheringAccumulate adds each pass's production onto the existing total
	GatheringAccumulate
)

func (p GatheringPolicy) String() string {
	switch p {
	case GatheringReset:
		return "reset"
	case GatheringAccumulate:
		return "accumulate"
	default:
		return "unknown"
	}
}

// ParseGatheringPolicy converts a config value into a GatheringPolicy
func ParseGatheringPolicy(value string) (GatheringPolicy, error) {
	switch value {
	case "reset", "":
		return GatheringReset, nil
	case "accumulate":
		return GatheringAccumulate, nil
	default:
		return 0, fmt.Errorf("unknown gathering policy: %s", value)
	}
}

// Player represents one empire in a session
type Player struct {
	id        shared.PlayerID
	resources shared.Resources
	policy    GatheringPolicy
}

// NewPlayer creates a player with zero resources
func NewPlayer(id shared.PlayerID, policy GatheringPolicy) *Player {
	return &Player{id: id, policy: policy}
}

// CreatePlayers creates num players with ids 0..num-1
func CreatePlayers(num int, policy GatheringPolicy) []*Player {
	players := make([]*Player, 0, num)
	for i := 0; i < num; i++ {
		players = append(players, NewPlayer(shared.PlayerID(i), policy))
	}
	return players
}

func (p *Player) ID() shared.PlayerID {
	return p.id
}

func (p *Player) Resources() shared.Resources {
	return p.resources
}

func (p *Player) Policy() GatheringPolicy {
	return p.policy
}

// Equals compares players by id
func (p *Player) Equals(other *Player) bool {
	return other != nil && p.id == other.id
}

// GatherResources folds the production of every built system the player owns
// into its resources. The snapshot is only read.
func (p *Player) GatherResources(snapshot OwnershipSnapshot) shared.Resources {
	total := shared.Resources{}
	if p.policy == GatheringAccumulate {
		total = p.resources
	}

	for _, system := range snapshot.SystemsOwnedBy(p.id) {
		if b, ok := system.Building(); ok {
			total = total.Add(b.Produce())
		}
	}

	p.resources = total
	return total
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %s)", p.id, p.resources)
}
