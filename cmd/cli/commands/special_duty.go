package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// AddSpecialDutyCmd creates the addSpecialDuty command
func AddSpecialDutyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addSpecialDuty <date> <trainee_nr>...",
		Short: "Record the special-duty (HU) trainees for a date",
		Long: `Record the special-duty (HU) trainees for a date.

Replaces any earlier record for the same date. HU trainees are kept out of
the early day slots and the kitchen on in-port lists for that date.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}

			var assigned []int
			for _, arg := range args[1:] {
				nr, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("trainee_nr must be a number, got %q", arg)
				}
				assigned = append(assigned, nr)
			}

			app.Registry.AddSpecialDuty(model.SpecialDuty{Date: date, Assigned: assigned})
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Special duty recorded for %s: %v\n\n", args[0], assigned)
			return nil
		},
	}
}
