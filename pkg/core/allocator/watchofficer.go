package allocator

import (
	"github.com/georgstage/vagtplan/pkg/core/model"
)

// Slot priority when looking up a role in an earlier list: the all-day slot
// wins, then the night watches, then the day watches.
var (
	lookupNightSlots = []model.TimeSlot{model.Slot2024, model.Slot0004, model.Slot0408}
	lookupDaySlots   = []model.TimeSlot{model.Slot0812, model.Slot1215, model.Slot1520}
)

// lastAssigned finds the most recent holder of a task within a shift group:
// first among the current list's other slots (in canonical order), then in
// the latest earlier list containing the task for that group. When
// samePeriodOnly is set, the backward scan is restricted to lists of the
// current list's owning period. Returns -1 when no holder exists.
func lastAssigned(
	task model.Task,
	slot model.TimeSlot,
	current *model.DutyList,
	lists []*model.DutyList,
	g model.ShiftGroup,
	samePeriodOnly bool,
) int {
	// An earlier pick in the same list wins outright.
	for _, s := range model.AllTimeSlots {
		if s == slot {
			continue
		}
		assignment, ok := current.Assignments[s]
		if !ok || assignment.ShiftGroup != g {
			continue
		}
		if nr, ok := assignment.Tasks[task]; ok {
			return nr
		}
	}

	var last *model.DutyList
	for _, list := range lists {
		if !list.Start.Before(current.Start) {
			continue
		}
		if samePeriodOnly && list.PeriodID != current.PeriodID {
			continue
		}

		found := false
		for _, assignment := range list.Assignments {
			if assignment.ShiftGroup != g {
				continue
			}
			if _, ok := assignment.Tasks[task]; ok {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if last == nil || list.Start.After(last.Start) {
			last = list
		}
	}
	if last == nil {
		return -1
	}

	holders := make(map[model.TimeSlot]int)
	for s, assignment := range last.Assignments {
		if assignment.ShiftGroup != g {
			continue
		}
		if nr, ok := assignment.Tasks[task]; ok {
			holders[s] = nr
		}
	}

	if nr, ok := holders[model.SlotAllDay]; ok {
		return nr
	}
	for _, s := range lookupNightSlots {
		if nr, ok := holders[s]; ok {
			return nr
		}
	}
	for _, s := range lookupDaySlots {
		if nr, ok := holders[s]; ok {
			return nr
		}
	}
	return -1
}

// lastWatchOfficer returns the most recent watch officer of the shift group.
// When the list carries a chronological seed for the group, the backward
// scan stays within the owning period so a fresh period restarts its
// rotation from the seed.
func lastWatchOfficer(slot model.TimeSlot, current *model.DutyList, snap *Snapshot, g model.ShiftGroup) int {
	samePeriodOnly := current.SeedWatchOfficer(g) != 0
	return lastAssigned(model.TaskWatchOfficer, slot, current, snap.Lists, g, samePeriodOnly)
}

// nextWatchOfficer returns the cyclic successor of nr within the shift
// group's band, wrapping band-end to band-start and skipping the reserved
// kitchen-hand numbers.
func nextWatchOfficer(nr int, g model.ShiftGroup) int {
	lo, hi := g.Band()
	next := nr + 1
	if nr == hi {
		next = lo
	}
	if model.IsReservedKitchenNumber(next) {
		return nextWatchOfficer(next, g)
	}
	return next
}

// chronologicalWatchOfficer advances deterministically from the last watch
// officer of the group (or the configured seed when the rotation has not
// started) to the next non-excluded number.
func chronologicalWatchOfficer(
	slot model.TimeSlot,
	list *model.DutyList,
	snap *Snapshot,
	g model.ShiftGroup,
	excluded map[int]bool,
) int {
	wo := lastWatchOfficer(slot, list, snap, g)
	if wo == -1 {
		if seed := list.SeedWatchOfficer(g); seed != 0 {
			return seed
		}
		lo, _ := g.Band()
		return lo
	}

	for {
		wo = nextWatchOfficer(wo, g)
		if !excluded[wo] {
			return wo
		}
	}
}
