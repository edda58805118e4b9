package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
)

func printReport(out io.Writer, report *game.StepReport) {
	fmt.Fprintf(out, "Step %d\n", report.Sequence)
	printPlayerReports(out, report.Players)
}

func printPlayerReports(out io.Writer, players []game.PlayerReport) {
	for _, p := range players {
		fmt.Fprintf(out, "  Player %s: food=%d technology=%d gold=%d\n",
			p.PlayerID, p.Resources.Food, p.Resources.Technology, p.Resources.Gold)
	}
}

func printPlayers(ctx context.Context, app *gameApp, out io.Writer) error {
	response, err := app.Send(ctx, &game.ListPlayersQuery{})
	if err != nil {
		return err
	}
	printPlayerReports(out, response.(*game.ListPlayersResponse).Players)
	return nil
}

func printStarmap(ctx context.Context, app *gameApp, out io.Writer) error {
	response, err := app.Send(ctx, &game.GetStarmapQuery{})
	if err != nil {
		return err
	}
	writeStarmap(out, response.(*game.GetStarmapResponse))
	return nil
}

// writeStarmap prints the render contract: one marker per system and one
// line per directed link, followed by the topology fingerprint
func writeStarmap(out io.Writer, view *game.GetStarmapResponse) {
	fmt.Fprintln(out, "Systems:")
	for i, marker := range view.Layout.Markers {
		fmt.Fprintf(out, "  %-4s at (%3d,%3d) %dx%d", marker.ID, marker.X, marker.Y, marker.Width, marker.Height)
		if i < len(view.Systems) {
			fmt.Fprint(out, describeSystem(view.Systems[i]))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Links:")
	for _, line := range view.Layout.Lines {
		fmt.Fprintf(out, "  %s -> %s  (%d,%d)-(%d,%d)\n",
			line.From, line.To, line.Start.X, line.Start.Y, line.End.X, line.End.Y)
	}

	fmt.Fprintf(out, "Fingerprint: %s\n", view.Fingerprint)
}

func describeSystem(s game.SystemView) string {
	var parts []string
	if s.Owner != nil {
		parts = append(parts, "owner="+s.Owner.String())
	}
	if s.Building != nil {
		parts = append(parts, "building="+s.Building.Name())
	}
	if len(s.Fleet) > 0 {
		parts = append(parts, "fleet="+formatFleet(s.Fleet))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

func formatFleet(composition map[fleet.ShipClass]int) string {
	classes := make([]fleet.ShipClass, 0, len(composition))
	for class := range composition {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		parts = append(parts, fmt.Sprintf("%s:%d", class.Name(), composition[class]))
	}
	return strings.Join(parts, ",")
}
