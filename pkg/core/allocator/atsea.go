package allocator

import (
	"errors"
	"fmt"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

var deploymentHandTasks = []model.Task{
	model.TaskDeploymentHandA,
	model.TaskDeploymentHandB,
	model.TaskDeploymentHandC,
	model.TaskDeploymentHandD,
	model.TaskDeploymentHandE,
}

// kitchenHandSlots are the at-sea slots that carry a kitchen-hand role.
var kitchenHandSlots = map[model.TimeSlot]bool{
	model.Slot0408: true,
	model.Slot0812: true,
	model.Slot1215: true,
	model.Slot1520: true,
}

// fillAtSea fills every materialized at-sea slot of the list. The shift
// group of each slot follows the fixed six-slot rotation from the list's
// starting shift.
func (a *Allocator) fillAtSea(list *model.DutyList, snap *Snapshot, offShip []int) error {
	var errs []error
	for _, slot := range atSeaSlots(list.Start, list.End) {
		g := atSeaShiftFor(list.StartingShift, slot)
		if err := a.fillAtSeaSlot(g, slot, list, snap, offShip); err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", slot, err))
		}
	}
	return errors.Join(errs...)
}

// fillAtSeaSlot fills one at-sea slot in priority order: watch officer,
// kitchen-hand carry-over, bearing-taker reservation, the four physical
// duties, the five deployment hands, the 15-20 bearing takers, and finally
// the kitchen hand. Every pick joins the exclusion set before the next, so
// duplicates are impossible by construction.
func (a *Allocator) fillAtSeaSlot(
	g model.ShiftGroup,
	slot model.TimeSlot,
	list *model.DutyList,
	snap *Snapshot,
	offShip []int,
) error {
	assignment := list.EnsureSlot(slot, g)
	assignment.ShiftGroup = g

	groupStats := stats.FilterByShiftGroup(g, stats.CountAssignments(snap.Lists))

	excluded := baseExclusions(list, snap, offShip)
	for _, nr := range assignment.Tasks {
		excluded[nr] = true
	}

	// The latest list of the previous calendar day, for adjacency checks.
	var previousDay *model.DutyList
	for _, other := range snap.Lists {
		if model.SameDate(list.Start.AddDate(0, 0, -1), other.Start) {
			previousDay = other
		}
	}

	var errs []error

	// Watch officer.
	if _, ok := assignment.Tasks[model.TaskWatchOfficer]; !ok {
		if list.ChronologicalWatchOfficer {
			assignment.Tasks[model.TaskWatchOfficer] = chronologicalWatchOfficer(slot, list, snap, g, excluded)
		} else {
			last := lastWatchOfficer(slot, list, snap, g)
			nr, err := a.pickLeastUsed(withExtra(excluded, last), stats.FilterByTask(model.TaskWatchOfficer, groupStats))
			if err != nil {
				errs = append(errs, fmt.Errorf("watch officer: %w", err))
			} else {
				assignment.Tasks[model.TaskWatchOfficer] = nr
			}
		}
	}
	if nr, ok := assignment.Tasks[model.TaskWatchOfficer]; ok {
		excluded[nr] = true
	}

	// Kitchen-hand carry-over: when another list on the same calendar date
	// with the same shift group already has an all-day kitchen hand, keep
	// that person in the kitchen across the duty-type boundary.
	kitchenCarry := 0
	for _, other := range snap.Lists {
		if !model.SameDate(list.Start, other.Start) {
			continue
		}
		if other.StartingShift != g || other.Type == model.DutyAtSea {
			continue
		}
		allDay, ok := other.Assignments[model.SlotAllDay]
		if !ok {
			continue
		}
		nr, ok := allDay.Tasks[model.TaskKitchenHand]
		if !ok || excluded[nr] {
			continue
		}
		kitchenCarry = nr
		excluded[nr] = true
	}

	// Reserve the previous bearing-taker B so they are free to inherit role
	// A if this turns out to be the 15-20 slot.
	lastBearingB := lastAssigned(model.TaskBearingTakerB, slot, list, snap.Lists, g, false)
	if lastBearingB != -1 {
		if excluded[lastBearingB] {
			lastBearingB = -1
		} else {
			excluded[lastBearingB] = true
		}
	}

	// Physical duties avoid anyone who already stood one on this watch day
	// or the previous one.
	var recentPhysical []int
	for _, source := range []*model.DutyList{list, previousDay} {
		if source == nil {
			continue
		}
		for _, other := range source.Assignments {
			for task, nr := range other.Tasks {
				if isPhysicalTask(task) {
					recentPhysical = append(recentPhysical, nr)
				}
			}
		}
	}

	for _, task := range physicalTasks {
		if _, ok := assignment.Tasks[task]; !ok {
			pool := withExtra(excluded, recentPhysical...)
			if nr, ok := a.pickMostDaysSince(pool, slot, g, list.EffectiveDate(), snap.Lists); ok {
				assignment.Tasks[task] = nr
			} else if nr, err := a.pickLeastUsed(pool, stats.FilterByTask(task, groupStats)); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", task, err))
			} else {
				assignment.Tasks[task] = nr
			}
		}
		if nr, ok := assignment.Tasks[task]; ok {
			excluded[nr] = true
		}
	}

	for _, task := range deploymentHandTasks {
		if _, ok := assignment.Tasks[task]; !ok {
			nr, err := a.pickLeastUsed(excluded, stats.FilterByTask(task, groupStats))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", task, err))
			} else {
				assignment.Tasks[task] = nr
			}
		}
		if nr, ok := assignment.Tasks[task]; ok {
			excluded[nr] = true
		}
	}

	if slot == model.Slot1520 {
		// Continuity pairing: yesterday's bearing-taker B becomes today's A.
		if lastBearingB != -1 {
			assignment.Tasks[model.TaskBearingTakerA] = lastBearingB
		}
		for _, task := range []model.Task{model.TaskBearingTakerA, model.TaskBearingTakerB} {
			if _, ok := assignment.Tasks[task]; !ok {
				nr, err := a.pickLeastUsed(excluded, stats.FilterByTask(task, groupStats))
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", task, err))
				} else {
					assignment.Tasks[task] = nr
				}
			}
			if nr, ok := assignment.Tasks[task]; ok {
				excluded[nr] = true
			}
		}
	}

	if kitchenHandSlots[slot] {
		if kitchenCarry != 0 {
			assignment.Tasks[model.TaskKitchenHand] = kitchenCarry
		} else if _, ok := assignment.Tasks[model.TaskKitchenHand]; !ok {
			nr, err := a.pickLeastUsed(excluded, stats.FilterByTask(model.TaskKitchenHand, groupStats))
			if err != nil {
				errs = append(errs, fmt.Errorf("kitchen hand: %w", err))
			} else {
				assignment.Tasks[model.TaskKitchenHand] = nr
			}
		}
		if nr, ok := assignment.Tasks[model.TaskKitchenHand]; ok {
			excluded[nr] = true
		}
	}

	return errors.Join(errs...)
}
