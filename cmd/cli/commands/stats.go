package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	var (
		taskFilter  string
		shiftFilter int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-trainee assignment counts across all duty lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := stats.CountAssignments(app.Registry.Lists)

			if taskFilter != "" {
				task := model.Task(taskFilter)
				table = stats.FilterByTask(task, table)
				if len(table) == 0 {
					return fmt.Errorf("unknown task %q", taskFilter)
				}
			}
			if shiftFilter != 0 {
				g := model.ShiftGroup(shiftFilter)
				if g < 1 || g > 3 {
					return fmt.Errorf("shift must be 1, 2 or 3, got %d", shiftFilter)
				}
				table = stats.FilterByShiftGroup(g, table)
			}

			// One row per trainee, tasks in canonical order.
			fmt.Printf("\n%-4s", "Nr")
			for _, task := range model.AllTasks {
				if taskFilter != "" && task != model.Task(taskFilter) {
					continue
				}
				fmt.Printf(" %5.5s", string(task))
			}
			fmt.Println()

			for nr := 1; nr <= 60; nr++ {
				if model.IsReservedKitchenNumber(nr) {
					continue
				}
				printed := false
				for _, task := range model.AllTasks {
					count, ok := table[stats.Key{Task: task, TraineeNr: nr}]
					if !ok {
						continue
					}
					if !printed {
						fmt.Printf("%-4d", nr)
						printed = true
					}
					fmt.Printf(" %5d", count)
				}
				if printed {
					fmt.Println()
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&taskFilter, "task", "", "Only count one task (wire value, e.g. \"Udkig\")")
	cmd.Flags().IntVar(&shiftFilter, "shift", 0, "Only count trainees of one shift group (1-3)")

	return cmd
}
