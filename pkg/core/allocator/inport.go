package allocator

import (
	"errors"
	"fmt"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

// scopedPairCounts builds a per-slot frequency table for a pair of
// interchangeable roles (gangway A/B, night watch A/B): for each trainee it
// counts how often either role was held in the given slot across duty lists
// of the given types. Both roles share one bucket so the pair stays balanced
// as a whole.
func scopedPairCounts(
	slot model.TimeSlot,
	lists []*model.DutyList,
	types map[model.DutyType]bool,
	taskA, taskB model.Task,
) map[stats.Key]int {
	counts := make(map[stats.Key]int)
	for nr := 1; nr <= 63; nr++ {
		if model.IsReservedKitchenNumber(nr) {
			continue
		}
		counts[stats.Key{Task: taskA, TraineeNr: nr}] = 0
	}

	for _, list := range lists {
		if !types[list.Type] {
			continue
		}
		assignment, ok := list.Assignments[slot]
		if !ok {
			continue
		}
		for task, nr := range assignment.Tasks {
			if task != taskA && task != taskB {
				continue
			}
			if nr == 0 || model.IsReservedKitchenNumber(nr) {
				continue
			}
			counts[stats.Key{Task: taskA, TraineeNr: nr}]++
		}
	}
	return counts
}

var inPortTypes = map[model.DutyType]bool{model.DutyInPort: true}

// pickGangwayWatch selects a gangway watch for the slot against in-port
// history only, so gangway duty stays fair independently of at-sea load.
func (a *Allocator) pickGangwayWatch(
	excluded map[int]bool,
	g model.ShiftGroup,
	slot model.TimeSlot,
	lists []*model.DutyList,
) (int, error) {
	counts := scopedPairCounts(slot, lists, inPortTypes, model.TaskGangwayWatchA, model.TaskGangwayWatchB)
	return a.pickLeastUsed(excluded, stats.FilterByShiftGroup(g, counts))
}

// fillInPort fills an in-port list: the all-day watch officer and kitchen
// hand first, then the day and night gangway pairs. Day and night groups are
// filled independently; a rolling last-four window keeps the same two people
// from repeating across adjacent night slots. Special-duty trainees are kept
// out of the two earliest day slots and the kitchen.
func (a *Allocator) fillInPort(list *model.DutyList, snap *Snapshot, offShip []int) error {
	var errs []error

	groupStats := stats.FilterByShiftGroup(list.StartingShift, stats.CountAssignments(snap.Lists))
	allDay := list.EnsureSlot(model.SlotAllDay, list.StartingShift)

	excluded := baseExclusions(list, snap, offShip)
	for _, nr := range allDay.Tasks {
		excluded[nr] = true
	}

	huNumbers := specialDutyNumbers(list, snap)

	// Watch officer for the whole day.
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
	watchOfficer, hasWatchOfficer := allDay.Tasks[model.TaskWatchOfficer]
	if hasWatchOfficer {
		excluded[watchOfficer] = true
	}

	// Kitchen hand for the whole day.
	if _, ok := allDay.Tasks[model.TaskKitchenHand]; !ok {
		nr, err := a.pickLeastUsed(withExtra(excluded, huNumbers...), stats.FilterByTask(model.TaskKitchenHand, groupStats))
		if err != nil {
			errs = append(errs, fmt.Errorf("kitchen hand: %w", err))
		} else {
			allDay.Tasks[model.TaskKitchenHand] = nr
		}
	}
	if nr, ok := allDay.Tasks[model.TaskKitchenHand]; ok {
		excluded[nr] = true
	}

	// scratchSolve tracks whether any fine-grained slot had pre-existing
	// assignments; the trainee-53 fixup only runs on a from-scratch fill.
	scratchSolve := true

	day, night := splitDayNight(inPortSlots(list.Start, list.End))

	var assignedDay []int
	var assignedNight []int
	lastFour := newRollingWindow(4)

	gangwayPair := []model.Task{model.TaskGangwayWatchA, model.TaskGangwayWatchB}

	for _, slot := range day {
		assignment := list.EnsureSlot(slot, list.StartingShift)
		if scratchSolve && len(assignment.Tasks) > 0 {
			scratchSolve = false
		}

		var huExcluded []int
		if slot == model.Slot0812 || slot == model.Slot1216 {
			huExcluded = huNumbers
		}

		for _, task := range gangwayPair {
			if _, ok := assignment.Tasks[task]; !ok {
				pool := withExtra(excluded, append(append([]int{}, assignedDay...), huExcluded...)...)
				nr, err := a.pickGangwayWatch(pool, list.StartingShift, slot, snap.Lists)
				if err != nil {
					errs = append(errs, fmt.Errorf("slot %s %s: %w", slot, task, err))
					continue
				}
				assignment.Tasks[task] = nr
			}
			nr := assignment.Tasks[task]
			assignedDay = append(assignedDay, nr)
			lastFour.push(nr)
		}
	}

	// The watch officer may stand night gangway watch.
	if hasWatchOfficer {
		delete(excluded, watchOfficer)
	}

	for _, slot := range night {
		assignment := list.EnsureSlot(slot, list.StartingShift)
		if scratchSolve && len(assignment.Tasks) > 0 {
			scratchSolve = false
		}

		for _, task := range gangwayPair {
			if _, ok := assignment.Tasks[task]; !ok {
				pool := withExtra(excluded, append(append([]int{}, assignedNight...), lastFour.values()...)...)
				nr, err := a.pickGangwayWatch(pool, list.StartingShift, slot, snap.Lists)
				if err != nil {
					errs = append(errs, fmt.Errorf("slot %s %s: %w", slot, task, err))
					continue
				}
				assignment.Tasks[task] = nr
			}
			nr := assignment.Tasks[task]
			assignedNight = append(assignedNight, nr)
			lastFour.push(nr)
		}
	}

	if scratchSolve {
		a.pinTrainee53To0406(list, gangwayPair, gangwayPair)
	}

	return errors.Join(errs...)
}
