package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// UpdatePeriodCmd creates the updatePeriod command
func UpdatePeriodCmd(app *AppContext) *cobra.Command {
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
		Use:   "updatePeriod <period_id> <type> <start> <end>",
		Short: "Edit a duty period and regenerate its duty lists",
		Long: `Edit a duty period and regenerate its duty lists.

Duty lists whose operational day is unchanged by the edit are kept as they
are, so manual corrections survive. Days that no longer exist are removed
and new days are autofilled.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid period id: %w", err)
			}
			start, err := parseTimestamp(args[2])
			if err != nil {
				return err
			}
			end, err := parseTimestamp(args[3])
			if err != nil {
				return err
			}

			updated := &model.DutyPeriod{
				Type:                      model.DutyType(args[1]),
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

			if err := app.Registry.UpdatePeriod(id, updated, app.Cfg.OffShipNumbers); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Duty period updated!\n\n")
			fmt.Printf("Duty lists:\n")
			for _, list := range app.Registry.Lists {
				if list.PeriodID == id {
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

// RemovePeriodCmd creates the removePeriod command
func RemovePeriodCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removePeriod <period_id>",
		Short: "Remove a duty period and all its duty lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid period id: %w", err)
			}

			if _, err := app.Registry.PeriodByID(id); err != nil {
				return err
			}
			app.Registry.RemovePeriod(id)
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Duty period %s removed.\n\n", id)
			return nil
		},
	}
}
