package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/services"
)

// PlanWeekendsCmd creates the planWeekends command
func PlanWeekendsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "planWeekends <from> <until>",
		Short: "Create shore-weekend periods from the configured recurrence rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}
			until, err := parseTimestamp(args[1])
			if err != nil {
				return err
			}

			created, err := services.PlanWeekends(app.Registry, app.Cfg.WeekendRules, app.Cfg.OffShipNumbers, from, until, app.Logger)
			if saveErr := app.Save(); saveErr != nil {
				return saveErr
			}
			if err != nil {
				return err
			}

			if len(created) == 0 {
				fmt.Println("\nNo new weekend periods to plan.")
				return nil
			}

			fmt.Printf("\n✓ Planned %d weekend periods:\n", len(created))
			for _, p := range created {
				fmt.Printf("  - %s\n", p)
			}
			fmt.Println()
			return nil
		},
	}
}
