package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/skylark/internal/adapters/cli"
	"github.com/example/skylark/internal/wire"
)

// EvaluateCmd returns the evaluate command
func EvaluateCmd() *cobra.Command {
	var droneID string
	var confirm, yes, withDrone bool

	cmd := &cobra.Command{
		Use:   "evaluate [project-id]",
		Short: "Evaluate pilots and a drone for a mission",
		Long: `Run one evaluation pass for a mission: check the selected drone for
conflicts, classify every pilot, and recommend one.

With --confirm the recommended pilot is written to the roster after you
confirm (or immediately with --yes). --with-drone deploys the drone too.

Examples:
  skylark evaluate PRJ001
  skylark evaluate PRJ001 --drone D001
  skylark evaluate PRJ001 --drone D001 --confirm --with-drone`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.AssignmentAdapter(yes)
			return adapter.Evaluate(wire.Context(), args[0], droneID, cliadapter.EvaluateOptions{
				Confirm:   confirm || yes,
				WithDrone: withDrone,
			})
		},
	}

	cmd.Flags().StringVarP(&droneID, "drone", "d", "", "Drone to check for conflicts")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Offer to commit the recommendation")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Commit without prompting (implies --confirm)")
	cmd.Flags().BoolVar(&withDrone, "with-drone", false, "Also deploy the drone on commit")
	return cmd
}
