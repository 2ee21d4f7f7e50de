package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DutyPeriod is a contiguous span of one duty type. It is the unit the user
// creates and edits; the concrete per-day DutyLists are derived from it.
type DutyPeriod struct {
	ID            uuid.UUID  `json:"id"`
	Type          DutyType   `json:"type"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Note          string     `json:"note"`
	StartingShift ShiftGroup `json:"startingShift"`

	// DoubleNightWatch and KitchenHandRequired only apply to shore lists.
	DoubleNightWatch    bool `json:"doubleNightWatch,omitempty"`
	KitchenHandRequired bool `json:"kitchenHandRequired,omitempty"`

	// ChronologicalWatchOfficer switches watch-officer selection from
	// least-used to a strict rotation through the shift group's band. The
	// seed numbers, when nonzero, pick where each group's rotation starts.
	ChronologicalWatchOfficer bool `json:"chronologicalWatchOfficer,omitempty"`
	SeedWatchOfficerShift1    int  `json:"seedWatchOfficerShift1,omitempty"`
	SeedWatchOfficerShift2    int  `json:"seedWatchOfficerShift2,omitempty"`
	SeedWatchOfficerShift3    int  `json:"seedWatchOfficerShift3,omitempty"`
}

// Validate checks construction invariants: the duty type must be known, the
// span non-empty, and each nonzero watch-officer seed must fall inside its
// shift group's numeric band and not be a reserved kitchen-hand number.
func (p *DutyPeriod) Validate() error {
	if !p.Type.IsValid() {
		return fmt.Errorf("unknown duty type %q", p.Type)
	}
	if p.StartingShift < ShiftGroup1 || p.StartingShift > ShiftGroup3 {
		return fmt.Errorf("invalid starting shift group %d", p.StartingShift)
	}
	if !p.End.After(p.Start) {
		return fmt.Errorf("duty period end %s is not after start %s", p.End, p.Start)
	}

	seeds := []struct {
		nr    int
		group ShiftGroup
	}{
		{p.SeedWatchOfficerShift1, ShiftGroup1},
		{p.SeedWatchOfficerShift2, ShiftGroup2},
		{p.SeedWatchOfficerShift3, ShiftGroup3},
	}
	for _, s := range seeds {
		if s.nr == 0 {
			continue
		}
		lo, hi := s.group.Band()
		if s.nr < lo || s.nr > hi || IsReservedKitchenNumber(s.nr) {
			return fmt.Errorf("invalid watch-officer seed %d for shift group %d (band %d-%d)", s.nr, s.group, lo, hi)
		}
	}
	return nil
}

// nextWatchDayStart returns the first 08:00 strictly after t.
func nextWatchDayStart(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), 8, 0, 0, 0, t.Location())
	for !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// ExpandToDutyLists generates the stub duty lists covering the period, one
// per watch day. The span is split at each 08:00 boundary; a leading or
// trailing fragment shorter than a full watch day becomes its own list. For
// at-sea periods every day keeps the period's starting shift, for in-port and
// shore periods the shift group rotates day by day, and shore weekends keep
// one group for the whole stay.
func (p *DutyPeriod) ExpandToDutyLists() ([]*DutyList, error) {
	type span struct{ start, end time.Time }
	var spans []span

	current := p.Start
	for nextWatchDayStart(current).Before(p.End) {
		next := nextWatchDayStart(current)
		spans = append(spans, span{current, next})
		current = next
	}
	if len(spans) == 0 {
		// The period is shorter than a watch day.
		spans = append(spans, span{p.Start, p.End})
	} else if !spans[len(spans)-1].end.Equal(p.End) {
		spans = append(spans, span{spans[len(spans)-1].end, p.End})
	}

	rotating := false
	switch p.Type {
	case DutyAtSea, DutyShoreWeekend:
	case DutyInPort, DutyShore:
		rotating = true
	default:
		return nil, fmt.Errorf("unknown duty type %q", p.Type)
	}

	shift := p.StartingShift
	lists := make([]*DutyList, 0, len(spans))
	for _, s := range spans {
		lists = append(lists, &DutyList{
			ID:                        uuid.New(),
			PeriodID:                  p.ID,
			Type:                      p.Type,
			Start:                     s.start,
			End:                       s.end,
			Note:                      p.Note,
			StartingShift:             shift,
			Assignments:               make(map[TimeSlot]*Assignment),
			DoubleNightWatch:          p.DoubleNightWatch,
			KitchenHandRequired:       p.KitchenHandRequired,
			ChronologicalWatchOfficer: p.ChronologicalWatchOfficer,
			SeedWatchOfficerShift1:    p.SeedWatchOfficerShift1,
			SeedWatchOfficerShift2:    p.SeedWatchOfficerShift2,
			SeedWatchOfficerShift3:    p.SeedWatchOfficerShift3,
		})
		if rotating {
			shift = shift%3 + 1
		}
	}
	return lists, nil
}

func (p *DutyPeriod) String() string {
	return fmt.Sprintf("%s: %s - %s [%d#] (%s)",
		p.Type,
		p.Start.Format("2006-01-02 15:04"),
		p.End.Format("2006-01-02 15:04"),
		p.StartingShift,
		p.Note)
}
