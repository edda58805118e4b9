package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spaceempire",
		Short: "Space Empire - a headless galaxy simulation",
		Long: `Space Empire runs a small turn-based galaxy: nine connected solar systems,
players who own them, buildings that produce resources and fleets of ships.

Every step runs one gathering pass for all players and reports their totals.

Examples:
  spaceempire play
  spaceempire run --steps 10 --rate 2
  spaceempire map
  spaceempire history --limit 5
  spaceempire config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/spaceempire)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewMapCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// loadConfig loads the configuration named by --config and applies --verbose
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}
