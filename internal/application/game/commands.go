package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceempire-go/internal/application/logging"
	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
	"github.com/andrescamacho/spaceempire-go/internal/domain/player"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// StepCommand runs one gathering pass
type StepCommand struct{}

// SetHomeworldsCommand assigns the two homeworlds to the session's players
type SetHomeworldsCommand struct{}

// BuildCommand replaces the building on a system
type BuildCommand struct {
	SystemID shared.SolarSystemID
	Class    building.Class
}

// ClaimSystemCommand sets the owner of a system
type ClaimSystemCommand struct {
	SystemID shared.SolarSystemID
	PlayerID shared.PlayerID
}

// ClearSystemCommand resets owner, building and fleet of a system
type ClearSystemCommand struct {
	SystemID shared.SolarSystemID
}

// AddShipsCommand commissions new ships at a system
type AddShipsCommand struct {
	SystemID shared.SolarSystemID
	Class    fleet.ShipClass
	Count    int
}

// TransferShipsCommand moves ships of one class between two systems' fleets
type TransferShipsCommand struct {
	From  shared.SolarSystemID
	To    shared.SolarSystemID
	Class fleet.ShipClass
	Count int
}

// MergeFleetsCommand drains one system's fleet into another's
type MergeFleetsCommand struct {
	From shared.SolarSystemID
	To   shared.SolarSystemID
}

// ListPlayersQuery lists the session's players
type ListPlayersQuery struct{}

// ListPlayersResponse carries a snapshot of every player's resources
type ListPlayersResponse struct {
	Players []PlayerReport
}

// GetStarmapQuery returns the read-only starmap view
type GetStarmapQuery struct{}

// GetStarmapResponse is the render contract plus the topology fingerprint
type GetStarmapResponse struct {
	Layout      galaxy.Layout
	Fingerprint string
	Systems     []SystemView
}

// SystemView is a flattened read-only projection of a solar system
type SystemView struct {
	ID       shared.SolarSystemID
	Location galaxy.Location
	Owner    *shared.PlayerID
	Building *building.Class
	Fleet    map[fleet.ShipClass]int
}

// Handler serves every session command and query
type Handler struct {
	session *SpaceEmpire
}

// NewHandler creates a Handler bound to session
func NewHandler(session *SpaceEmpire) *Handler {
	return &Handler{session: session}
}

// Handle executes a session command or query
func (h *Handler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch req := request.(type) {
	case *StepCommand:
		return h.session.Step(ctx)
	case *SetHomeworldsCommand:
		return nil, h.session.SetHomeworlds()
	case *BuildCommand:
		return nil, h.session.Build(req.SystemID, req.Class)
	case *ClaimSystemCommand:
		return nil, h.session.Claim(req.SystemID, req.PlayerID)
	case *ClearSystemCommand:
		return nil, h.session.ClearSystem(req.SystemID)
	case *AddShipsCommand:
		return nil, h.session.AddShips(req.SystemID, req.Class, req.Count)
	case *TransferShipsCommand:
		return nil, h.session.TransferShips(req.From, req.To, req.Class, req.Count)
	case *MergeFleetsCommand:
		return nil, h.session.MergeFleets(req.From, req.To)
	case *ListPlayersQuery:
		return &ListPlayersResponse{Players: snapshotPlayers(h.session.Players())}, nil
	case *GetStarmapQuery:
		return starmapView(h.session.Starmap()), nil
	default:
		return nil, fmt.Errorf("invalid request type: %T", request)
	}
}

// RegisterHandlers binds every session request type to a single Handler
func RegisterHandlers(med mediator.Mediator, session *SpaceEmpire) error {
	handler := NewHandler(session)
	registrations := []func() error{
		func() error { return mediator.RegisterHandler[*StepCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*SetHomeworldsCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*BuildCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*ClaimSystemCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*ClearSystemCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*AddShipsCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*TransferShipsCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*MergeFleetsCommand](med, handler) },
		func() error { return mediator.RegisterHandler[*ListPlayersQuery](med, handler) },
		func() error { return mediator.RegisterHandler[*GetStarmapQuery](med, handler) },
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return fmt.Errorf("failed to register game handler: %w", err)
		}
	}
	return nil
}

// LoggingMiddleware logs every request type and any error it returns
func LoggingMiddleware(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
	logger := logging.LoggerFromContext(ctx)
	requestType := fmt.Sprintf("%T", request)

	logger.Log("DEBUG", "Handling request", map[string]interface{}{"request": requestType})
	response, err := next(ctx, request)
	if err != nil {
		logger.Log("ERROR", "Request failed", map[string]interface{}{
			"request": requestType,
			"error":   err.Error(),
		})
	}
	return response, err
}

func snapshotPlayers(players []*player.Player) []PlayerReport {
	reports := make([]PlayerReport, 0, len(players))
	for _, p := range players {
		reports = append(reports, PlayerReport{PlayerID: p.ID(), Resources: p.Resources()})
	}
	return reports
}

func starmapView(m *galaxy.Starmap) *GetStarmapResponse {
	systems := m.Systems()
	views := make([]SystemView, 0, len(systems))
	for _, s := range systems {
		view := SystemView{ID: s.ID(), Location: s.Location()}
		if owner, ok := s.Owner(); ok {
			view.Owner = &owner
		}
		if b, ok := s.Building(); ok {
			class := b.Class()
			view.Building = &class
		}
		if f := s.Fleet(); f != nil {
			view.Fleet = f.Composition()
		}
		views = append(views, view)
	}

	return &GetStarmapResponse{
		Layout:      m.Layout(),
		Fingerprint: m.Fingerprint(),
		Systems:     views,
	}
}
