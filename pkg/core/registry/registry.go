// Package registry owns the in-memory duty-roster collections and triggers
// re-allocation when a period is added or edited. It is single-threaded: one
// logical session owns one Registry.
package registry

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/georgstage/vagtplan/pkg/core/allocator"
	"github.com/georgstage/vagtplan/pkg/core/model"
)

// Registry holds the duty periods, their derived duty lists, and the
// exclusion and special-duty records the allocator consults.
type Registry struct {
	Periods       []*model.DutyPeriod
	Lists         []*model.DutyList
	Exclusions    []model.RosterExclusion
	SpecialDuties []model.SpecialDuty

	alloc     *allocator.Allocator
	logger    *zap.Logger
	listeners []func()
}

// New returns an empty Registry allocating through alloc.
func New(alloc *allocator.Allocator, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{alloc: alloc, logger: logger}
}

// RegisterListener adds a callback invoked after every mutation of the
// collections.
func (r *Registry) RegisterListener(fn func()) {
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) notify() {
	for _, fn := range r.listeners {
		fn()
	}
}

// Snapshot exposes the current collections as the allocator's read-only
// context.
func (r *Registry) Snapshot() *allocator.Snapshot {
	return &allocator.Snapshot{
		Lists:         r.Lists,
		Exclusions:    r.Exclusions,
		SpecialDuties: r.SpecialDuties,
	}
}

// PeriodByID finds a period by its ID.
func (r *Registry) PeriodByID(id uuid.UUID) (*model.DutyPeriod, error) {
	for _, p := range r.Periods {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no duty period with id %s", id)
}

// AddPeriod validates the period, expands it into stub duty lists, autofills
// each stub against the existing collection, and appends everything.
// Allocation exhaustion on individual roles is logged and the remaining
// stubs still fill.
func (r *Registry) AddPeriod(period *model.DutyPeriod, offShip []int) error {
	if err := period.Validate(); err != nil {
		return fmt.Errorf("invalid duty period: %w", err)
	}
	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}

	stubs, err := period.ExpandToDutyLists()
	if err != nil {
		return err
	}

	r.Periods = append(r.Periods, period)
	for _, stub := range stubs {
		if err := r.alloc.FillDutyList(stub, r.Snapshot(), offShip); err != nil {
			r.logger.Warn("autofill incomplete",
				zap.String("list", stub.String()),
				zap.Error(err))
		}
		r.Lists = append(r.Lists, stub)
	}

	r.notify()
	return nil
}

// stubIdentity decides whether an existing list and a freshly expanded stub
// describe the same operational day. Lists whose identity is unchanged are
// preserved across period edits, keeping manual edits intact.
func stubIdentity(a, b *model.DutyList) bool {
	return a.Type == b.Type &&
		a.StartingShift == b.StartingShift &&
		model.SameDate(a.Start, b.Start) &&
		model.SameDate(a.End, b.End) &&
		a.DoubleNightWatch == b.DoubleNightWatch &&
		a.KitchenHandRequired == b.KitchenHandRequired &&
		a.ChronologicalWatchOfficer == b.ChronologicalWatchOfficer
}

// UpdatePeriod applies the edited fields to the stored period, regenerates
// its stub lists, and diffs them against the existing lists: lists whose
// identity is unchanged stay (preserving manual edits), the rest are removed
// and the new days autofilled.
func (r *Registry) UpdatePeriod(id uuid.UUID, updated *model.DutyPeriod, offShip []int) error {
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("invalid duty period: %w", err)
	}

	stored, err := r.PeriodByID(id)
	if err != nil {
		return err
	}

	stored.Type = updated.Type
	stored.Start = updated.Start
	stored.End = updated.End
	stored.Note = updated.Note
	stored.StartingShift = updated.StartingShift
	stored.DoubleNightWatch = updated.DoubleNightWatch
	stored.KitchenHandRequired = updated.KitchenHandRequired
	stored.ChronologicalWatchOfficer = updated.ChronologicalWatchOfficer
	stored.SeedWatchOfficerShift1 = updated.SeedWatchOfficerShift1
	stored.SeedWatchOfficerShift2 = updated.SeedWatchOfficerShift2
	stored.SeedWatchOfficerShift3 = updated.SeedWatchOfficerShift3

	stubs, err := stored.ExpandToDutyLists()
	if err != nil {
		return err
	}

	// Drop lists of this period that the edited span no longer produces.
	var kept []*model.DutyList
	for _, list := range r.Lists {
		if list.PeriodID != id {
			kept = append(kept, list)
			continue
		}
		matched := false
		for _, stub := range stubs {
			if stubIdentity(list, stub) {
				matched = true
				break
			}
		}
		if matched {
			kept = append(kept, list)
		}
	}
	r.Lists = kept

	// Autofill and add the days that are genuinely new.
	for _, stub := range stubs {
		exists := false
		for _, list := range r.Lists {
			if stubIdentity(list, stub) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		if err := r.alloc.FillDutyList(stub, r.Snapshot(), offShip); err != nil {
			r.logger.Warn("autofill incomplete",
				zap.String("list", stub.String()),
				zap.Error(err))
		}
		r.Lists = append(r.Lists, stub)
	}

	r.notify()
	return nil
}

// RemovePeriod deletes the period and every duty list derived from it.
func (r *Registry) RemovePeriod(id uuid.UUID) {
	var periods []*model.DutyPeriod
	for _, p := range r.Periods {
		if p.ID != id {
			periods = append(periods, p)
		}
	}
	r.Periods = periods

	var lists []*model.DutyList
	for _, l := range r.Lists {
		if l.PeriodID != id {
			lists = append(lists, l)
		}
	}
	r.Lists = lists

	r.notify()
}

// ReplaceList swaps in an edited copy of a duty list. The editing surface
// validates the copy before calling this.
func (r *Registry) ReplaceList(edited *model.DutyList) error {
	for i, list := range r.Lists {
		if list.ID == edited.ID {
			r.Lists[i] = edited
			r.notify()
			return nil
		}
	}
	return fmt.Errorf("no duty list with id %s", edited.ID)
}

// AutofillAll re-runs the allocator over every stored duty list in order,
// filling any cells left open. Errors are collected per list and logged;
// the batch always completes.
func (r *Registry) AutofillAll(offShip []int) error {
	var failed int
	for _, list := range r.Lists {
		if err := r.alloc.FillDutyList(list, r.Snapshot(), offShip); err != nil {
			failed++
			r.logger.Warn("autofill incomplete",
				zap.String("list", list.String()),
				zap.Error(err))
		}
	}
	r.notify()
	if failed > 0 {
		return fmt.Errorf("%d of %d duty lists filled incompletely", failed, len(r.Lists))
	}
	return nil
}

// AddExclusion records a roster exclusion.
func (r *Registry) AddExclusion(e model.RosterExclusion) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.Exclusions = append(r.Exclusions, e)
	r.notify()
}

// AddSpecialDuty records a special-duty (HU) list for a date, replacing any
// existing record for the same date.
func (r *Registry) AddSpecialDuty(hu model.SpecialDuty) {
	for i, existing := range r.SpecialDuties {
		if existing.On(hu.Date) {
			r.SpecialDuties[i] = hu
			r.notify()
			return
		}
	}
	r.SpecialDuties = append(r.SpecialDuties, hu)
	r.notify()
}
