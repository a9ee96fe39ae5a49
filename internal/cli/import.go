package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [workbook.yaml]",
		Short: "Replace the roster with a YAML workbook",
		Long: `Replace the missions, pilot_roster and drone_fleet tables with the
missions:, pilots: and drones: lists of a YAML workbook. The workbook is
validated first; nothing is replaced if any sheet is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Import(wire.Context(), args[0])
		},
	}
}
