// Package cli defines the skylark command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/version"
	"github.com/example/skylark/internal/wire"
)

// RootCmd returns the skylark root command with every subcommand attached.
func RootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:     "skylark",
		Short:   "Skylark - pilot and drone assignment for field missions",
		Version: version.String(),
		Long: `Skylark evaluates which pilot and drone can staff a mission.

It checks the selected drone for conflicts, partitions the pilot roster into
eligible, reassignable and rejected pilots, recommends one, and writes the
assignment back to the roster only after explicit confirmation.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || wire.Config().NoColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	// Setup
	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(ImportCmd())

	// Roster
	rootCmd.AddCommand(MissionCmd())
	rootCmd.AddCommand(PilotCmd())
	rootCmd.AddCommand(DroneCmd())
	rootCmd.AddCommand(HistoryCmd())

	// Assignment
	rootCmd.AddCommand(EvaluateCmd())
	rootCmd.AddCommand(ReleaseCmd())

	return rootCmd
}
