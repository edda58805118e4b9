package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/domain/galaxy"
)

// NewMapCommand creates the map command
func NewMapCommand() *cobra.Command {
	var withHomeworlds bool

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the generated starmap layout",
		Long: `Print the starmap as a renderer would draw it: a 50x50 marker per system
at 80 pixel spacing and a line between the centres of neighbouring systems.

Example:
  spaceempire map --homeworlds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := game.NewSpaceEmpire()
			if err != nil {
				return err
			}
			if withHomeworlds {
				if err := session.SetHomeworlds(); err != nil {
					return err
				}
			}

			handler := game.NewHandler(session)
			response, err := handler.Handle(cmd.Context(), &game.GetStarmapQuery{})
			if err != nil {
				return err
			}
			writeStarmap(cmd.OutOrStdout(), response.(*game.GetStarmapResponse))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withHomeworlds, "homeworlds", false,
		"Assign the two homeworlds before printing")

	return cmd
}

// universeFingerprint is the fingerprint every generated universe shares
func universeFingerprint() string {
	return galaxy.GenerateUniverse().Fingerprint()
}
