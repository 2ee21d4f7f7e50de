package commands

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/validate"
)

// EditSlotCmd creates the editSlot command
func EditSlotCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "editSlot <list_id> <slot> <task> <trainee_nr>",
		Short: "Manually assign a trainee to one task in one timeslot",
		Long: `Manually assign a trainee to one task in one timeslot.

A trainee number of 0 clears the cell so the next autofill can pick a new
candidate. The edit is rejected when it double-books the trainee within
the slot.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid list id: %w", err)
			}
			nr, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("trainee_nr must be a number: %w", err)
			}

			var list *model.DutyList
			for _, l := range app.Registry.Lists {
				if l.ID == id {
					list = l
					break
				}
			}
			if list == nil {
				return fmt.Errorf("no duty list with id %s", id)
			}

			slot := model.TimeSlot(args[1])
			assignment, ok := list.Assignments[slot]
			if !ok {
				return fmt.Errorf("list has no timeslot %q", args[1])
			}
			task := model.Task(args[2])
			if _, ok := assignment.Tasks[task]; !ok {
				return fmt.Errorf("timeslot %q has no task %q", args[1], args[2])
			}

			edited := *list
			edited.Assignments = make(map[model.TimeSlot]*model.Assignment, len(list.Assignments))
			for s, a := range list.Assignments {
				copied := model.NewAssignment(a.ShiftGroup)
				for t, heldBy := range a.Tasks {
					copied.Tasks[t] = heldBy
				}
				edited.Assignments[s] = copied
			}
			edited.Assignments[slot].Tasks[task] = nr

			if c := validate.Assignment(slot, edited.Assignments[slot]); c != nil {
				return fmt.Errorf("edit rejected: %s", c)
			}

			if err := app.Registry.ReplaceList(&edited); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			fmt.Printf("\n✓ %s %s set to nr. %d on %s.\n\n", slot, task, nr, list)
			return nil
		},
	}
}
