// Package stats aggregates historical assignment counts used by the
// allocation engine's fairness heuristics and by the reporting surface.
//
// All functions are pure: counts are recomputed from the duty-list collection
// on every call. The collection is bounded to a few hundred lists, so no
// incremental cache is kept.
package stats

import (
	"github.com/georgstage/vagtplan/pkg/core/model"
)

// Key identifies one counting bucket: a task held by a trainee.
type Key struct {
	Task      model.Task
	TraineeNr int
}

// CountAssignments counts how many times every trainee has held every task
// across all duty lists. Every non-reserved trainee × task bucket is present
// even when zero, so selection always sees the full candidate pool. The two
// night-watch variants are merged into one bucket to keep the fairness metric
// symmetric between role A and role B.
func CountAssignments(lists []*model.DutyList) map[Key]int {
	counts := make(map[Key]int)
	for nr := 1; nr <= 63; nr++ {
		if model.IsReservedKitchenNumber(nr) {
			continue
		}
		for _, task := range model.AllTasks {
			counts[Key{task, nr}] = 0
		}
	}

	for _, list := range lists {
		for _, assignment := range list.Assignments {
			for task, nr := range assignment.Tasks {
				if nr == 0 || model.IsReservedKitchenNumber(nr) {
					continue
				}
				if task == model.TaskNightWatchB {
					task = model.TaskNightWatchA
				}
				counts[Key{task, nr}]++
			}
		}
	}
	return counts
}

// FilterByTask keeps only the buckets of the given task.
func FilterByTask(task model.Task, counts map[Key]int) map[Key]int {
	filtered := make(map[Key]int)
	for key, n := range counts {
		if key.Task != task {
			continue
		}
		filtered[key] = n
	}
	return filtered
}

// FilterByShiftGroup keeps only the buckets of trainees belonging to the
// given shift group, derived purely from the numeric band.
func FilterByShiftGroup(g model.ShiftGroup, counts map[Key]int) map[Key]int {
	filtered := make(map[Key]int)
	for key, n := range counts {
		group, err := model.ShiftGroupForTrainee(key.TraineeNr)
		if err != nil || group != g {
			continue
		}
		filtered[key] = n
	}
	return filtered
}
