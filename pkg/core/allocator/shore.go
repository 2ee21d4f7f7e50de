package allocator

import (
	"errors"
	"fmt"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

var shoreTypes = map[model.DutyType]bool{
	model.DutyShore:        true,
	model.DutyShoreWeekend: true,
}

// pickNightWatch selects a night watch for the slot against shore history
// only.
func (a *Allocator) pickNightWatch(
	excluded map[int]bool,
	g model.ShiftGroup,
	slot model.TimeSlot,
	lists []*model.DutyList,
) (int, error) {
	counts := scopedPairCounts(slot, lists, shoreTypes, model.TaskNightWatchA, model.TaskNightWatchB)
	return a.pickLeastUsed(excluded, stats.FilterByShiftGroup(g, counts))
}

// fillShore fills a shore (or shore-weekend) list: the all-day watch officer,
// the all-day kitchen hand when the period requires one, then the five night
// slots with night watch A and, when double night watch is configured, B.
func (a *Allocator) fillShore(list *model.DutyList, snap *Snapshot, offShip []int) error {
	var errs []error

	groupStats := stats.FilterByShiftGroup(list.StartingShift, stats.CountAssignments(snap.Lists))
	allDay := list.EnsureSlot(model.SlotAllDay, list.StartingShift)

	excluded := baseExclusions(list, snap, offShip)
	for _, nr := range allDay.Tasks {
		excluded[nr] = true
	}

	if _, ok := allDay.Tasks[model.TaskWatchOfficer]; !ok {
		if list.ChronologicalWatchOfficer {
			allDay.Tasks[model.TaskWatchOfficer] = chronologicalWatchOfficer(model.SlotAllDay, list, snap, list.StartingShift, excluded)
		} else {
			last := lastWatchOfficer(model.SlotAllDay, list, snap, list.StartingShift)
			nr, err := a.pickLeastUsed(withExtra(excluded, last), stats.FilterByTask(model.TaskWatchOfficer, groupStats))
			if err != nil {
				errs = append(errs, fmt.Errorf("watch officer: %w", err))
			} else {
				allDay.Tasks[model.TaskWatchOfficer] = nr
			}
		}
	}
	if nr, ok := allDay.Tasks[model.TaskWatchOfficer]; ok {
		excluded[nr] = true
	}

	if list.KitchenHandRequired {
		if _, ok := allDay.Tasks[model.TaskKitchenHand]; !ok {
			nr, err := a.pickLeastUsed(excluded, stats.FilterByTask(model.TaskKitchenHand, groupStats))
			if err != nil {
				errs = append(errs, fmt.Errorf("kitchen hand: %w", err))
			} else {
				allDay.Tasks[model.TaskKitchenHand] = nr
			}
		}
		if nr, ok := allDay.Tasks[model.TaskKitchenHand]; ok {
			excluded[nr] = true
		}
	}

	scratchSolve := true
	var assignedNight []int

	nightPair := []model.Task{model.TaskNightWatchA}
	if list.DoubleNightWatch {
		nightPair = append(nightPair, model.TaskNightWatchB)
	}

	for _, slot := range shoreSlots(list.Start, list.End) {
		if slot == model.SlotAllDay {
			continue
		}

		assignment := list.EnsureSlot(slot, list.StartingShift)
		if scratchSolve && len(assignment.Tasks) > 0 {
			scratchSolve = false
		}

		for _, task := range nightPair {
			if nr, ok := assignment.Tasks[task]; ok {
				assignedNight = append(assignedNight, nr)
				continue
			}
			pool := withExtra(excluded, assignedNight...)
			nr, err := a.pickNightWatch(pool, list.StartingShift, slot, snap.Lists)
			if err != nil {
				errs = append(errs, fmt.Errorf("slot %s %s: %w", slot, task, err))
				continue
			}
			assignment.Tasks[task] = nr
			assignedNight = append(assignedNight, nr)
		}
	}

	if scratchSolve {
		a.pinTrainee53To0406(list, []model.Task{model.TaskNightWatchA, model.TaskNightWatchB}, nightPair)
	}

	return errors.Join(errs...)
}
