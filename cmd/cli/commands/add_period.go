package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// AddPeriodCmd creates the addPeriod command
func AddPeriodCmd(app *AppContext) *cobra.Command {
	var (
		shift            int
		note             string
		doubleNightWatch bool
		kitchenHand      bool
		chronological    bool
		seed1            int
		seed2            int
		seed3            int
	)

	cmd := &cobra.Command{
		Use:   "addPeriod <type> <start> <end>",
		Short: "Add a duty period and autofill its duty lists",
		Long: `Add a duty period and autofill its duty lists.

The type is one of "Søvagt", "Havn", "Holmen" or "Weekend". Start and end
accept YYYY-MM-DD or YYYY-MM-DDTHH:MM. The period is split into one duty
list per watch day (08:00 to 08:00) and every open cell is filled.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dutyType := model.DutyType(args[0])
			start, err := parseTimestamp(args[1])
			if err != nil {
				return err
			}
			end, err := parseTimestamp(args[2])
			if err != nil {
				return err
			}

			period := &model.DutyPeriod{
				Type:                      dutyType,
				Start:                     start,
				End:                       end,
				Note:                      note,
				StartingShift:             model.ShiftGroup(shift),
				DoubleNightWatch:          doubleNightWatch,
				KitchenHandRequired:       kitchenHand,
				ChronologicalWatchOfficer: chronological,
				SeedWatchOfficerShift1:    seed1,
				SeedWatchOfficerShift2:    seed2,
				SeedWatchOfficerShift3:    seed3,
			}

			if err := app.Registry.AddPeriod(period, app.Cfg.OffShipNumbers); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Duty period created!\n\n")
			fmt.Printf("Period ID: %s\n", period.ID)
			fmt.Printf("Type:      %s\n", period.Type)
			fmt.Printf("Window:    %s to %s\n\n", period.Start.Format("2006-01-02 15:04"), period.End.Format("2006-01-02 15:04"))

			fmt.Printf("Duty lists:\n")
			for _, list := range app.Registry.Lists {
				if list.PeriodID == period.ID {
					fmt.Printf("  - %s\n", list)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 1, "Shift group on duty at the period start (1-3)")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note shown on the duty lists")
	cmd.Flags().BoolVar(&doubleNightWatch, "double-night-watch", false, "Assign two trainees per shore night watch")
	cmd.Flags().BoolVar(&kitchenHand, "kitchen-hand", false, "Assign a kitchen hand on shore duty")
	cmd.Flags().BoolVar(&chronological, "chronological", false, "Rotate watch officers chronologically through the shift band")
	cmd.Flags().IntVar(&seed1, "seed1", 0, "First chronological watch officer for shift 1 (0 = none)")
	cmd.Flags().IntVar(&seed2, "seed2", 0, "First chronological watch officer for shift 2 (0 = none)")
	cmd.Flags().IntVar(&seed3, "seed3", 0, "First chronological watch officer for shift 3 (0 = none)")

	return cmd
}
