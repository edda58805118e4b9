package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/domain/building"
	"github.com/andrescamacho/spaceempire-go/internal/domain/fleet"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

const playHelp = `Commands:
  <enter> | s | step                      run one step
  q | quit                                end the game
  players                                 show player resources
  map                                     show the starmap
  build <system> <Farm|Laboratory|GoldMine>
  claim <system> <player>
  clear <system>
  ships <system> <Colony|Scout|Fighter> <count>
  transfer <from> <to> <class> <count>
  merge <from> <to>
  help`

var errQuit = errors.New("quit")

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively, one step per line",
		Long: `Start a session and read commands from standard input.

An empty line (or "s", "step", or a single space) runs one step; "q", "quit"
or end of input ends the game. Type "help" for the other commands.

Example:
  spaceempire play`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := newGameApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			return playLoop(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func playLoop(ctx context.Context, app *gameApp, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Session %s started. Type \"help\" for commands.\n", app.session.SessionID())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := executeLine(ctx, app, scanner.Text(), out)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Fprintln(out, "Goodbye.")
	return nil
}

// executeLine runs one line of play input. It returns errQuit to end the game.
func executeLine(ctx context.Context, app *gameApp, line string, out io.Writer) error {
	if line == " " || strings.TrimSpace(line) == "" {
		return runStep(ctx, app, out)
	}

	fields := strings.Fields(line)
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "s", "step":
		return runStep(ctx, app, out)
	case "q", "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(out, playHelp)
		return nil
	case "players":
		return printPlayers(ctx, app, out)
	case "map":
		return printStarmap(ctx, app, out)
	case "build":
		return buildCommand(ctx, app, args)
	case "claim":
		return claimCommand(ctx, app, args)
	case "clear":
		return clearCommand(ctx, app, args)
	case "ships":
		return shipsCommand(ctx, app, args)
	case "transfer":
		return transferCommand(ctx, app, args)
	case "merge":
		return mergeCommand(ctx, app, args)
	default:
		return fmt.Errorf("unknown command %q (type \"help\")", fields[0])
	}
}

func runStep(ctx context.Context, app *gameApp, out io.Writer) error {
	report, err := app.Step(ctx)
	if report != nil {
		printReport(out, report)
	}
	return err
}

func buildCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: build <system> <class>")
	}
	system, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	class, err := building.ParseClass(args[1])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.BuildCommand{SystemID: system, Class: class})
	return err
}

func claimCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: claim <system> <player>")
	}
	system, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	playerID, err := parseUint32("player", args[1])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.ClaimSystemCommand{SystemID: system, PlayerID: shared.PlayerID(playerID)})
	return err
}

func clearCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: clear <system>")
	}
	system, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.ClearSystemCommand{SystemID: system})
	return err
}

func shipsCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: ships <system> <class> <count>")
	}
	system, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	class, err := fleet.ParseShipClass(args[1])
	if err != nil {
		return err
	}
	count, err := parseCount(args[2])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.AddShipsCommand{SystemID: system, Class: class, Count: count})
	return err
}

func transferCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: transfer <from> <to> <class> <count>")
	}
	from, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	to, err := parseSystemID(args[1])
	if err != nil {
		return err
	}
	class, err := fleet.ParseShipClass(args[2])
	if err != nil {
		return err
	}
	count, err := parseCount(args[3])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.TransferShipsCommand{From: from, To: to, Class: class, Count: count})
	return err
}

func mergeCommand(ctx context.Context, app *gameApp, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: merge <from> <to>")
	}
	from, err := parseSystemID(args[0])
	if err != nil {
		return err
	}
	to, err := parseSystemID(args[1])
	if err != nil {
		return err
	}
	_, err = app.Send(ctx, &game.MergeFleetsCommand{From: from, To: to})
	return err
}

func parseSystemID(value string) (shared.SolarSystemID, error) {
	id, err := parseUint32("system", strings.TrimPrefix(value, "#"))
	return shared.SolarSystemID(id), err
}

func parseUint32(field, value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return uint32(n), nil
}

func parseCount(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", value)
	}
	return n, nil
}
