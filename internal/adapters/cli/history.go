package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/database"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "Show recorded step history",
		Long: `Show the per-player totals recorded for each step of a session.

Without a session id the most recent session is shown. Recording happens
only when database.enabled is set.

Examples:
  spaceempire history
  spaceempire history game-a3f8e2b1 --limit 5
  spaceempire history sessions`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openHistory()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			sessionID := ""
			if len(args) == 1 {
				sessionID = args[0]
			} else {
				sessionID, err = repo.LatestSessionID(ctx)
				if err != nil {
					return err
				}
				if sessionID == "" {
					fmt.Fprintln(out, "No sessions recorded.")
					return nil
				}
			}

			reports, err := repo.ListBySession(ctx, sessionID, limit)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintf(out, "No steps recorded for session %s.\n", sessionID)
				return nil
			}

			fmt.Fprintf(out, "Session %s\n", sessionID)
			current := universeFingerprint()
			for _, report := range reports {
				fmt.Fprintf(out, "Step %d at %s", report.Sequence, report.Timestamp.Format(time.RFC3339))
				if report.Fingerprint != current {
					fmt.Fprint(out, " (different starmap)")
				}
				fmt.Fprintln(out)
				printPlayerReports(out, report.Players)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the last N steps (0 for all)")
	cmd.AddCommand(newHistorySessionsCommand())

	return cmd
}

func newHistorySessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openHistory()
			if err != nil {
				return err
			}
			defer closeDB()

			sessions, err := repo.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			writeSessions(cmd.OutOrStdout(), sessions)
			return nil
		},
	}
}

func writeSessions(out io.Writer, sessions []persistence.SessionSummary) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded.")
		return
	}
	for _, s := range sessions {
		fmt.Fprintf(out, "%s  steps=%d  last=%s\n", s.SessionID, s.Steps, s.LastSeen.Format(time.RFC3339))
	}
}

// openHistory opens the configured database regardless of database.enabled,
// since reading history never records anything
func openHistory() (*persistence.GormStepHistoryRepository, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open step history: %w", err)
	}

	closeDB := func() {
		_ = database.Close(db)
	}
	return persistence.NewGormStepHistoryRepository(db), closeDB, nil
}
