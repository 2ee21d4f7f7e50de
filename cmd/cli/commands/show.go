package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// ListPeriodsCmd creates the listPeriods command
func ListPeriodsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPeriods",
		Short: "List all duty periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Registry.Periods) == 0 {
				fmt.Println("\nNo duty periods stored.")
				return nil
			}

			fmt.Printf("\n%d duty periods:\n", len(app.Registry.Periods))
			for _, p := range app.Registry.Periods {
				fmt.Printf("  %s  %s\n", p.ID, p)
			}
			fmt.Println()
			return nil
		},
	}
}

// ShowListsCmd creates the showLists command
func ShowListsCmd(app *AppContext) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "showLists",
		Short: "Print the duty lists with their full task assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter func(*model.DutyList) bool
			if date != "" {
				day, err := parseDate(date)
				if err != nil {
					return err
				}
				filter = func(l *model.DutyList) bool { return model.SameDate(l.EffectiveDate(), day) }
			}

			shown := 0
			for _, list := range app.Registry.Lists {
				if filter != nil && !filter(list) {
					continue
				}
				printList(list)
				shown++
			}
			if shown == 0 {
				fmt.Println("\nNo duty lists matched.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only show lists for one watch day (YYYY-MM-DD)")

	return cmd
}

func printList(list *model.DutyList) {
	fmt.Printf("\n%s  (%s to %s)\n", list, list.Start.Format("2006-01-02 15:04"), list.End.Format("2006-01-02 15:04"))
	if list.Note != "" {
		fmt.Printf("  Note: %s\n", list.Note)
	}
	for _, slot := range model.AllTimeSlots {
		assignment, ok := list.Assignments[slot]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s [%d#]", slot, assignment.ShiftGroup)
		for _, task := range model.AllTasks {
			nr, held := assignment.Tasks[task]
			if !held {
				continue
			}
			fmt.Printf("  %s=%d", task, nr)
		}
		fmt.Println()
	}
}
