package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assignment is the content of one time slot: the shift group responsible for
// it and the task → trainee-number mapping. A trainee number of 0 is an
// unassigned placeholder.
type Assignment struct {
	ShiftGroup ShiftGroup   `json:"shiftGroup"`
	Tasks      map[Task]int `json:"tasks"`
}

// NewAssignment returns an empty Assignment for the given shift group.
func NewAssignment(g ShiftGroup) *Assignment {
	return &Assignment{ShiftGroup: g, Tasks: make(map[Task]int)}
}

// DutyList is one operational day (or day fragment) derived from exactly one
// DutyPeriod. The policy flags are copied from the owning period so a list
// can be allocated without chasing the period.
type DutyList struct {
	ID            uuid.UUID                `json:"id"`
	PeriodID      uuid.UUID                `json:"periodId"`
	Type          DutyType                 `json:"type"`
	Start         time.Time                `json:"start"`
	End           time.Time                `json:"end"`
	Note          string                   `json:"note"`
	StartingShift ShiftGroup               `json:"startingShift"`
	Assignments   map[TimeSlot]*Assignment `json:"assignments"`

	DoubleNightWatch          bool `json:"doubleNightWatch,omitempty"`
	KitchenHandRequired       bool `json:"kitchenHandRequired,omitempty"`
	ChronologicalWatchOfficer bool `json:"chronologicalWatchOfficer,omitempty"`
	SeedWatchOfficerShift1    int  `json:"seedWatchOfficerShift1,omitempty"`
	SeedWatchOfficerShift2    int  `json:"seedWatchOfficerShift2,omitempty"`
	SeedWatchOfficerShift3    int  `json:"seedWatchOfficerShift3,omitempty"`
}

// EffectiveDate returns the watch day the list belongs to. The watch day
// begins at 08:00, so a list starting before 08:00 still counts as the
// previous calendar day.
func (l *DutyList) EffectiveDate() time.Time {
	d := l.Start
	if d.Hour() < 8 {
		d = d.AddDate(0, 0, -1)
	}
	return DateOf(d)
}

// EnsureSlot returns the Assignment for the given slot, creating an empty one
// with the given shift group when the slot has not been materialized yet.
func (l *DutyList) EnsureSlot(slot TimeSlot, g ShiftGroup) *Assignment {
	if l.Assignments == nil {
		l.Assignments = make(map[TimeSlot]*Assignment)
	}
	if a, ok := l.Assignments[slot]; ok {
		return a
	}
	a := NewAssignment(g)
	l.Assignments[slot] = a
	return a
}

// SeedWatchOfficer returns the configured chronological watch-officer seed
// for the given shift group, 0 when none is set.
func (l *DutyList) SeedWatchOfficer(g ShiftGroup) int {
	switch g {
	case ShiftGroup1:
		return l.SeedWatchOfficerShift1
	case ShiftGroup2:
		return l.SeedWatchOfficerShift2
	default:
		return l.SeedWatchOfficerShift3
	}
}

func (l *DutyList) String() string {
	if l.Type == DutyAtSea {
		return fmt.Sprintf("%s: %s", l.Type, l.EffectiveDate().Format("2006-01-02"))
	}
	return fmt.Sprintf("%s[%d#]: %s", l.Type, l.StartingShift, l.EffectiveDate().Format("2006-01-02"))
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
