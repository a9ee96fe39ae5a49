package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/db"
	"github.com/example/skylark/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the skylark database",
		Long: `Initialize the skylark database (SKYLARK_DB_PATH, default ~/.skylark/skylark.db)
with the roster tables and the assignment log.

Examples:
  skylark init
  skylark init --demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing skylark database at %s\n", wire.Config().DBPath)

			// Opening the database applies the schema
			database := wire.Database()
			fmt.Fprintln(out, "✓ Database initialized successfully")

			if demo {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed demo roster: %w", err)
				}
				fmt.Fprintln(out, "✓ Demo roster loaded")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  skylark import roster.yaml")
			fmt.Fprintln(out, "  skylark evaluate PRJ001 --drone D001")
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Load a small demo roster into empty tables")
	return cmd
}
