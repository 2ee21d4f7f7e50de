package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/validate"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every duty list for double bookings",
		Long: `Check every duty list for double bookings.

Reports trainees holding two tasks in the same timeslot and trainees on
special duty (HU) who also hold a daytime task that day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts := 0
			for _, list := range app.Registry.Lists {
				if c := validate.DutyList(list); c != nil {
					fmt.Printf("  ✗ %s: %s\n", list, c)
					conflicts++
				}
				for i := range app.Registry.SpecialDuties {
					hu := &app.Registry.SpecialDuties[i]
					if !hu.On(model.DateOf(list.EffectiveDate())) {
						continue
					}
					if c := validate.SpecialDuty(list, hu); c != nil {
						fmt.Printf("  ✗ %s: HU clash: %s\n", list, c)
						conflicts++
					}
				}
			}

			if conflicts == 0 {
				fmt.Printf("\n✓ No conflicts in %d duty lists.\n\n", len(app.Registry.Lists))
				return nil
			}
			return fmt.Errorf("%d conflicts found", conflicts)
		},
	}
}
