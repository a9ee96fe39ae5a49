package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// ReleaseCmd returns the release command
func ReleaseCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Free a pilot or drone from its current mission",
	}
	cmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Release without prompting")

	cmd.AddCommand(&cobra.Command{
		Use:   "pilot [name]",
		Short: "Set an Assigned pilot back to Available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AssignmentAdapter(yes).ReleasePilot(wire.Context(), args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "drone [drone-id]",
		Short: "Set a Deployed drone back to Available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AssignmentAdapter(yes).ReleaseDrone(wire.Context(), args[0])
		},
	})

	return cmd
}
