// Package validate detects duplicate-person conflicts in duty lists. It is
// used by the editing surface before committing a manual edit; the allocation
// engine never calls it because its running exclusion sets make duplicates
// structurally impossible.
package validate

import (
	"fmt"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// Conflict describes one duplicate-trainee violation: two tasks in the same
// slot held by the same trainee number. It is surfaced for display, never
// auto-resolved.
type Conflict struct {
	Slot  model.TimeSlot
	TaskA model.Task
	NrA   int
	TaskB model.Task
	NrB   int
}

func (c *Conflict) String() string {
	return fmt.Sprintf("%s: %s and %s share trainee nr. %d", c.Slot, c.TaskA, c.TaskB, c.NrA)
}

// Assignment scans one slot's tasks in the canonical task order and returns
// the first pair of tasks held by the same trainee, or nil.
func Assignment(slot model.TimeSlot, a *model.Assignment) *Conflict {
	type held struct {
		task model.Task
		nr   int
	}
	var seen []held

	for _, task := range model.AllTasks {
		nr, ok := a.Tasks[task]
		if !ok || nr == 0 {
			continue
		}
		for _, h := range seen {
			if h.nr == nr {
				return &Conflict{Slot: slot, TaskA: task, NrA: nr, TaskB: h.task, NrB: h.nr}
			}
		}
		seen = append(seen, held{task, nr})
	}
	return nil
}

// DutyList validates every slot of a list, short-circuiting on the first
// conflict found.
func DutyList(list *model.DutyList) *Conflict {
	for _, slot := range model.AllTimeSlots {
		a, ok := list.Assignments[slot]
		if !ok {
			continue
		}
		if conflict := Assignment(slot, a); conflict != nil {
			return conflict
		}
	}
	return nil
}

// specialDutySlots are the windows a special-duty trainee must keep free.
var specialDutySlots = []model.TimeSlot{model.SlotAllDay, model.Slot0812, model.Slot1216}

// SpecialDuty cross-checks a special-duty (HU) assignment list against the
// early day-slot role holders of a duty list. The watch officer is exempt.
func SpecialDuty(list *model.DutyList, hu *model.SpecialDuty) *Conflict {
	for _, slot := range specialDutySlots {
		a, ok := list.Assignments[slot]
		if !ok {
			continue
		}
		for _, task := range model.AllTasks {
			if task == model.TaskWatchOfficer {
				continue
			}
			nr, ok := a.Tasks[task]
			if !ok {
				continue
			}
			for _, assigned := range hu.Assigned {
				if nr != assigned {
					continue
				}
				return &Conflict{Slot: slot, TaskA: task, NrA: nr, TaskB: model.TaskSpecialDuty, NrB: assigned}
			}
		}
	}
	return nil
}
