package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RosterExclusion marks a trainee as unavailable for any assignment during an
// inclusive date span (an "afmønstring").
type RosterExclusion struct {
	ID        uuid.UUID `json:"id"`
	TraineeNr int       `json:"traineeNr"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Covers reports whether the exclusion is active for a duty list spanning
// [listStart, listEnd). The exclusion must cover the whole span.
func (e *RosterExclusion) Covers(listStart, listEnd time.Time) bool {
	return !DateOf(e.StartDate).After(DateOf(listStart)) && !DateOf(e.EndDate).Before(DateOf(listEnd))
}

func (e *RosterExclusion) String() string {
	return fmt.Sprintf("%s[nr. %d]: %s - %s",
		e.Name, e.TraineeNr,
		e.StartDate.Format("2006-01-02"),
		e.EndDate.Format("2006-01-02"))
}

// SpecialDuty (an "HU" record) is a per-date list of trainees with a special
// assignment. On its date those trainees must not also hold a non-watch-
// officer role in the early day slots of an in-port list.
type SpecialDuty struct {
	Date     time.Time `json:"date"`
	Assigned []int     `json:"assigned"`
}

// On reports whether the special duty applies to the given calendar day.
func (s *SpecialDuty) On(day time.Time) bool {
	return SameDate(s.Date, day)
}
