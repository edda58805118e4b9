package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/pidfile"
)

// NewRunCommand creates the autoplay command
func NewRunCommand() *cobra.Command {
	var (
		steps     int
		stepRate  float64
		stepBurst int
		quiet     bool
		pidPath   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a number of steps without input",
		Long: `Start a session and run --steps steps, paced by a rate limiter.

The pace defaults to game.step_rate steps per second (0 means as fast as
possible) with game.step_burst steps allowed back to back.

Examples:
  spaceempire run --steps 10
  spaceempire run --steps 100 --rate 0 --quiet
  spaceempire run --steps 0 --pidfile /tmp/spaceempire.pid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rate") {
				cfg.Game.StepRate = stepRate
			}
			if cmd.Flags().Changed("burst") {
				cfg.Game.StepBurst = stepBurst
			}

			if pidPath != "" {
				lock, err := pidfile.Acquire(pidPath)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			app, err := newGameApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			limiter := newStepLimiter(cfg.Game.StepRate, cfg.Game.StepBurst)
			return runSteps(cmd.Context(), app, limiter, steps, quiet, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 10, "Number of steps to run")
	cmd.Flags().Float64Var(&stepRate, "rate", 1, "Steps per second (0 for unlimited)")
	cmd.Flags().IntVar(&stepBurst, "burst", 1, "Steps allowed back to back")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final totals")
	cmd.Flags().StringVar(&pidPath, "pidfile", "", "Refuse to start while another run holds this PID file")

	return cmd
}

// newStepLimiter paces autoplay; a non-positive rate never waits
func newStepLimiter(stepsPerSecond float64, burst int) *rate.Limiter {
	if stepsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(stepsPerSecond), burst)
}

func runSteps(ctx context.Context, app *gameApp, limiter *rate.Limiter, steps int, quiet bool, out io.Writer) error {
	for i := 0; i < steps; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("stopped after %d steps: %w", i, err)
		}

		report, err := app.Step(ctx)
		if err != nil {
			return fmt.Errorf("step %d failed: %w", i+1, err)
		}
		if !quiet {
			printReport(out, report)
		}
	}

	fmt.Fprintf(out, "Session %s finished after %d steps\n", app.session.SessionID(), steps)
	return printPlayers(ctx, app, out)
}
