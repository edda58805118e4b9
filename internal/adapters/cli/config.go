package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Space Empire configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SE_* prefix, e.g. SE_GAME_GATHERING_POLICY)
2. Config file (config.yaml)
3. Default values

Example:
  spaceempire config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				masked := *cfg
				masked.Database.Password = maskSecret(masked.Database.Password)
				masked.Database.URL = maskPassword(masked.Database.URL)
				fmt.Fprintln(out, prettyPrint(masked))
				return nil
			}

			fmt.Fprintln(out, "Space Empire Configuration")
			fmt.Fprintln(out, "==========================")

			fmt.Fprintln(out, "Game:")
			fmt.Fprintf(out, "  Players:          %d\n", cfg.Game.Players)
			fmt.Fprintf(out, "  Gathering:        %s\n", cfg.Game.GatheringPolicy)
			fmt.Fprintf(out, "  Homeworlds:       %t\n", cfg.Game.Homeworlds)
			fmt.Fprintf(out, "  Step Rate:        %g/s (burst: %d)\n", cfg.Game.StepRate, cfg.Game.StepBurst)

			fmt.Fprintln(out, "\nStep History:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Database.Enabled)
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
				fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
			}

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         http://%s%s\n", cfg.Metrics.Addr(), cfg.Metrics.Path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

// maskPassword masks the password in a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return "xxxxx"
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
