package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Inspect missions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).ListMissions(wire.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show [project-id]",
		Short: "Show mission details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).ShowMission(wire.Context(), args[0])
		},
	})

	return cmd
}

// PilotCmd returns the pilot command
func PilotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pilot",
		Short: "Inspect the pilot roster",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pilots in roster order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).ListPilots(wire.Context())
		},
	})

	return cmd
}

// DroneCmd returns the drone command
func DroneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drone",
		Short: "Inspect the drone fleet",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List drones in fleet order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).ListDrones(wire.Context())
		},
	})

	return cmd
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var limit int
	var entity string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent assignment writes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).History(wire.Context(), entity, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries to show (default 50)")
	cmd.Flags().StringVar(&entity, "entity", "", "Only show writes for this pilot name or drone id")
	return cmd
}
