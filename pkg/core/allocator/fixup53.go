package allocator

import (
	"github.com/georgstage/vagtplan/pkg/core/model"
)

// trainee53 always stands the 04-06 watch. This is a literal domain rule
// about one specific number, not an algorithmic necessity; it is kept in a
// single function so it is easy to remove or make configurable.
const trainee53 = 53

// pinTrainee53To0406 runs after a from-scratch solve: if trainee 53 drew a
// night slot other than 04-06, they are swapped with whoever drew 04-06.
// searchTasks are the roles scanned for 53; swapTasks are the 04-06 roles
// eligible for the swap (one is chosen at random). A list without a 04-06
// slot, or where 53 did not appear, is left untouched.
func (a *Allocator) pinTrainee53To0406(list *model.DutyList, searchTasks, swapTasks []model.Task) {
	var foundSlot model.TimeSlot
	var foundTask model.Task

	for _, slot := range model.AllTimeSlots {
		if isDayWatch(slot) {
			continue
		}
		assignment, ok := list.Assignments[slot]
		if !ok {
			continue
		}
		for _, task := range searchTasks {
			if assignment.Tasks[task] == trainee53 {
				foundSlot, foundTask = slot, task
				break
			}
		}
		if foundTask != "" {
			break
		}
	}

	if foundTask == "" || foundSlot == model.Slot0406 {
		return
	}
	target, ok := list.Assignments[model.Slot0406]
	if !ok {
		return
	}

	swapTask := swapTasks[a.rng.Intn(len(swapTasks))]
	other, ok := target.Tasks[swapTask]
	if !ok {
		return
	}

	list.Assignments[foundSlot].Tasks[foundTask] = other
	target.Tasks[swapTask] = trainee53
}
