package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// AddExclusionCmd creates the addExclusion command
func AddExclusionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addExclusion <trainee_nr> <name> <start_date> <end_date>",
		Short: "Mark a trainee unavailable for a date span (afmønstring)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nr, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("trainee_nr must be a number: %w", err)
			}
			start, err := parseDate(args[2])
			if err != nil {
				return err
			}
			end, err := parseDate(args[3])
			if err != nil {
				return err
			}
			if end.Before(start) {
				return fmt.Errorf("end date %s is before start date %s", args[3], args[2])
			}

			app.Registry.AddExclusion(model.RosterExclusion{
				TraineeNr: nr,
				Name:      args[1],
				StartDate: start,
				EndDate:   end,
			})
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Exclusion recorded for nr. %d, %s to %s.\n\n", nr, args[2], args[3])
			return nil
		},
	}
}

// ListExclusionsCmd creates the listExclusions command
func ListExclusionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listExclusions",
		Short: "List all recorded exclusions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Registry.Exclusions) == 0 {
				fmt.Println("\nNo exclusions recorded.")
				return nil
			}

			fmt.Printf("\n%d exclusions:\n", len(app.Registry.Exclusions))
			for i := range app.Registry.Exclusions {
				fmt.Printf("  - %s\n", &app.Registry.Exclusions[i])
			}
			fmt.Println()
			return nil
		},
	}
}
