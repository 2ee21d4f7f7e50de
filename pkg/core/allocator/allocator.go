// Package allocator implements the greedy duty-roster fill. Given a duty
// list with open task cells and the full history of past assignments, it
// picks trainee numbers that respect hard constraints (no duplicate person
// per slot, shift-group bands, roster exclusions) while approximately
// balancing assignment counts and avoiding repeat adjacency. It is a
// heuristic priority-ordered fill, not a CSP solver.
package allocator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// Snapshot is the read-only context the engine allocates against: the full
// duty-list history plus the exclusion and special-duty records. The caller
// owns the collections; the engine only writes into the list being filled.
type Snapshot struct {
	Lists         []*model.DutyList
	Exclusions    []model.RosterExclusion
	SpecialDuties []model.SpecialDuty
}

// Allocator fills duty lists. Randomness (tie-breaking) comes from the
// injected source so tests can seed it.
type Allocator struct {
	rng *rand.Rand
}

// New returns an Allocator drawing tie-breaks from rng. A nil rng gets a
// time-seeded source.
func New(rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Allocator{rng: rng}
}

// FillDutyList fills every open task cell of the list, dispatching to the
// strategy for its duty type. Pool exhaustion on individual roles is
// collected and returned after the remaining roles have been attempted; an
// unknown duty type is an immediate error.
func (a *Allocator) FillDutyList(list *model.DutyList, snap *Snapshot, offShip []int) error {
	switch list.Type {
	case model.DutyAtSea:
		return a.fillAtSea(list, snap, offShip)
	case model.DutyInPort:
		return a.fillInPort(list, snap, offShip)
	case model.DutyShore, model.DutyShoreWeekend:
		return a.fillShore(list, snap, offShip)
	default:
		return fmt.Errorf("unknown duty type %q", list.Type)
	}
}

// baseExclusions builds the starting exclusion set for a list: the caller's
// off-ship numbers plus every roster exclusion active on the list's span.
func baseExclusions(list *model.DutyList, snap *Snapshot, offShip []int) map[int]bool {
	excluded := make(map[int]bool)
	for _, nr := range offShip {
		excluded[nr] = true
	}
	for _, e := range snap.Exclusions {
		if e.Covers(list.Start, list.End) {
			excluded[e.TraineeNr] = true
		}
	}
	return excluded
}

// withExtra returns a copy of the exclusion set with the given numbers added.
// Non-positive numbers are ignored.
func withExtra(excluded map[int]bool, extra ...int) map[int]bool {
	merged := make(map[int]bool, len(excluded)+len(extra))
	for nr := range excluded {
		merged[nr] = true
	}
	for _, nr := range extra {
		if nr > 0 {
			merged[nr] = true
		}
	}
	return merged
}

// specialDutyNumbers returns the trainees on special duty on the list's
// start date.
func specialDutyNumbers(list *model.DutyList, snap *Snapshot) []int {
	for _, hu := range snap.SpecialDuties {
		if hu.On(list.Start) {
			return hu.Assigned
		}
	}
	return nil
}

// rollingWindow is a bounded queue of the most recent assignments, used as a
// short-term exclusion layer to keep the same people from repeating across
// adjacent slots.
type rollingWindow struct {
	max  int
	vals []int
}

func newRollingWindow(max int) *rollingWindow {
	return &rollingWindow{max: max}
}

func (w *rollingWindow) push(nr int) {
	w.vals = append(w.vals, nr)
	if len(w.vals) > w.max {
		w.vals = w.vals[1:]
	}
}

func (w *rollingWindow) values() []int {
	return w.vals
}
