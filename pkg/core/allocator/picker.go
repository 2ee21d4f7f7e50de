package allocator

import (
	"fmt"
	"sort"
	"time"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

// farPastDays stands in for "never assigned" when measuring the distance to a
// trainee's most recent physical duty.
const farPastDays = 999999

// candidate is one scored trainee in a selection pool.
type candidate struct {
	nr    int
	score int
}

// selectBest returns the highest-scoring candidate, breaking ties uniformly
// at random. The second return is false when the pool is empty.
func (a *Allocator) selectBest(cands []candidate) (int, bool) {
	if len(cands) == 0 {
		return 0, false
	}

	best := cands[0].score
	for _, c := range cands[1:] {
		if c.score > best {
			best = c.score
		}
	}

	var ties []int
	for _, c := range cands {
		if c.score == best {
			ties = append(ties, c.nr)
		}
	}
	sort.Ints(ties)
	return ties[a.rng.Intn(len(ties))], true
}

// pickLeastUsed selects the trainee with the fewest historical assignments in
// the given stats table, excluding the given numbers. An exhausted pool is a
// real operational condition (every eligible trainee excluded) and is
// reported as an error rather than defaulted.
func (a *Allocator) pickLeastUsed(excluded map[int]bool, table map[stats.Key]int) (int, error) {
	var cands []candidate
	for key, count := range table {
		if excluded[key.TraineeNr] {
			continue
		}
		cands = append(cands, candidate{nr: key.TraineeNr, score: -count})
	}

	nr, ok := a.selectBest(cands)
	if !ok {
		return 0, fmt.Errorf("no eligible trainee remains (%d numbers excluded)", len(excluded))
	}
	return nr, nil
}

// physicalTasks are the four roles that count as physically standing a watch.
var physicalTasks = []model.Task{
	model.TaskMessenger,
	model.TaskLookout,
	model.TaskRadioWatch,
	model.TaskHelmsman,
}

func isPhysicalTask(task model.Task) bool {
	for _, t := range physicalTasks {
		if t == task {
			return true
		}
	}
	return false
}

func absDays(a, b time.Time) int {
	d := int(model.DateOf(a).Sub(model.DateOf(b)).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

// pickMostDaysSince selects, from the given shift group, the trainee whose
// most recent physical duty lies furthest in the past. Per trainee the
// minimum absolute day distance to any physical duty is sampled together
// with its slot; trainees never assigned get an effectively infinite
// distance. A trainee whose nearest duty is in the same day/night category
// as the requested slot and more than one day away is skipped, so the pool
// can come up empty; the caller then falls back to pickLeastUsed.
func (a *Allocator) pickMostDaysSince(
	excluded map[int]bool,
	slot model.TimeSlot,
	g model.ShiftGroup,
	today time.Time,
	lists []*model.DutyList,
) (int, bool) {
	type nearest struct {
		days int
		slot model.TimeSlot
	}
	lastDuty := make(map[int]nearest)

	for _, list := range lists {
		date := list.EffectiveDate()
		for dutySlot, assignment := range list.Assignments {
			for task, nr := range assignment.Tasks {
				if !isPhysicalTask(task) {
					continue
				}
				d := absDays(today, date)
				if cur, ok := lastDuty[nr]; !ok || d < cur.days {
					lastDuty[nr] = nearest{days: d, slot: dutySlot}
				}
			}
		}
	}

	for nr := 1; nr <= 63; nr++ {
		if model.IsReservedKitchenNumber(nr) {
			continue
		}
		if _, ok := lastDuty[nr]; !ok {
			lastDuty[nr] = nearest{days: farPastDays, slot: slot}
		}
	}

	var cands []candidate
	for nr, duty := range lastDuty {
		group, err := model.ShiftGroupForTrainee(nr)
		if err != nil || group != g {
			continue
		}
		if excluded[nr] {
			continue
		}
		if isDayWatch(duty.slot) == isDayWatch(slot) && duty.days > 1 && duty.days < farPastDays {
			continue
		}
		cands = append(cands, candidate{nr: nr, score: duty.days})
	}

	return a.selectBest(cands)
}
