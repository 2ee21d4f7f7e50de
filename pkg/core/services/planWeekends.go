package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/georgstage/vagtplan/internal/config"
	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/registry"
)

// PlanWeekends expands the configured weekend rules over [from, until) and
// creates one shore-weekend duty period per occurrence. Occurrences already
// covered by a stored period are skipped, so re-running the planner is safe.
func PlanWeekends(reg *registry.Registry, rules []config.WeekendRule, offShip []int, from, until time.Time, logger *zap.Logger) ([]*model.DutyPeriod, error) {
	logger.Debug("Planning weekend periods",
		zap.Int("rules", len(rules)),
		zap.Time("from", from),
		zap.Time("until", until))

	var created []*model.DutyPeriod
	for i, rule := range rules {
		rr, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for weekend rule %d: %w", i, err)
		}
		rr.DTStart(from)

		for _, occurrence := range rr.Between(from, until, true) {
			end := occurrence.Add(time.Duration(rule.DurationHours) * time.Hour)
			if alreadyPlanned(reg, occurrence, end) {
				logger.Debug("Weekend occurrence already covered",
					zap.Time("start", occurrence))
				continue
			}

			period := &model.DutyPeriod{
				Type:          model.DutyShoreWeekend,
				Start:         occurrence,
				End:           end,
				Note:          rule.Note,
				StartingShift: model.ShiftGroup(rule.StartingShift),
			}
			if err := reg.AddPeriod(period, offShip); err != nil {
				return created, fmt.Errorf("failed to add weekend period starting %s: %w",
					occurrence.Format("2006-01-02"), err)
			}

			logger.Info("Weekend period planned",
				zap.Time("start", occurrence),
				zap.Time("end", end),
				zap.Int("starting_shift", rule.StartingShift))
			created = append(created, period)
		}
	}

	return created, nil
}

// alreadyPlanned reports whether any stored period overlaps the window.
func alreadyPlanned(reg *registry.Registry, start, end time.Time) bool {
	for _, p := range reg.Periods {
		if p.Start.Before(end) && start.Before(p.End) {
			return true
		}
	}
	return false
}
