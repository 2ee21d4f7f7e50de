package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// GetPeriods retrieves all duty periods ordered by start.
func (s *Store) GetPeriods(ctx context.Context) ([]*model.DutyPeriod, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, duty_type, start_at, end_at, note, starting_shift,
		       double_night_watch, kitchen_hand_required, chronological_watch_officer,
		       seed_watch_officer_shift1, seed_watch_officer_shift2, seed_watch_officer_shift3
		FROM duty_period
		ORDER BY start_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty periods: %w", err)
	}
	defer rows.Close()

	var periods []*model.DutyPeriod
	for rows.Next() {
		var p model.DutyPeriod
		var dutyType string
		var shift int16
		var seed1, seed2, seed3 int16
		if err := rows.Scan(&p.ID, &dutyType, &p.Start, &p.End, &p.Note, &shift,
			&p.DoubleNightWatch, &p.KitchenHandRequired, &p.ChronologicalWatchOfficer,
			&seed1, &seed2, &seed3); err != nil {
			return nil, fmt.Errorf("failed to scan duty period: %w", err)
		}
		p.Type = model.DutyType(dutyType)
		p.StartingShift = model.ShiftGroup(shift)
		p.SeedWatchOfficerShift1 = int(seed1)
		p.SeedWatchOfficerShift2 = int(seed2)
		p.SeedWatchOfficerShift3 = int(seed3)
		periods = append(periods, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty periods: %w", err)
	}
	return periods, nil
}

// UpsertPeriod inserts or updates a duty period.
func (s *Store) UpsertPeriod(ctx context.Context, p *model.DutyPeriod) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO duty_period (
			id, duty_type, start_at, end_at, note, starting_shift,
			double_night_watch, kitchen_hand_required, chronological_watch_officer,
			seed_watch_officer_shift1, seed_watch_officer_shift2, seed_watch_officer_shift3
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			duty_type = EXCLUDED.duty_type,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			note = EXCLUDED.note,
			starting_shift = EXCLUDED.starting_shift,
			double_night_watch = EXCLUDED.double_night_watch,
			kitchen_hand_required = EXCLUDED.kitchen_hand_required,
			chronological_watch_officer = EXCLUDED.chronological_watch_officer,
			seed_watch_officer_shift1 = EXCLUDED.seed_watch_officer_shift1,
			seed_watch_officer_shift2 = EXCLUDED.seed_watch_officer_shift2,
			seed_watch_officer_shift3 = EXCLUDED.seed_watch_officer_shift3
	`, p.ID, string(p.Type), p.Start, p.End, p.Note, int16(p.StartingShift),
		p.DoubleNightWatch, p.KitchenHandRequired, p.ChronologicalWatchOfficer,
		int16(p.SeedWatchOfficerShift1), int16(p.SeedWatchOfficerShift2), int16(p.SeedWatchOfficerShift3))
	if err != nil {
		return fmt.Errorf("failed to upsert duty period: %w", err)
	}
	return nil
}

// DeletePeriod removes a duty period; its duty lists cascade.
func (s *Store) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM duty_period WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete duty period: %w", err)
	}
	return nil
}

// GetLists retrieves all duty lists ordered by start.
func (s *Store) GetLists(ctx context.Context) ([]*model.DutyList, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, period_id, duty_type, start_at, end_at, note, starting_shift, assignments,
		       double_night_watch, kitchen_hand_required, chronological_watch_officer,
		       seed_watch_officer_shift1, seed_watch_officer_shift2, seed_watch_officer_shift3
		FROM duty_list
		ORDER BY start_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty lists: %w", err)
	}
	defer rows.Close()

	var lists []*model.DutyList
	for rows.Next() {
		var l model.DutyList
		var dutyType string
		var shift int16
		var seed1, seed2, seed3 int16
		var assignments []byte
		if err := rows.Scan(&l.ID, &l.PeriodID, &dutyType, &l.Start, &l.End, &l.Note, &shift, &assignments,
			&l.DoubleNightWatch, &l.KitchenHandRequired, &l.ChronologicalWatchOfficer,
			&seed1, &seed2, &seed3); err != nil {
			return nil, fmt.Errorf("failed to scan duty list: %w", err)
		}
		l.Type = model.DutyType(dutyType)
		l.StartingShift = model.ShiftGroup(shift)
		l.SeedWatchOfficerShift1 = int(seed1)
		l.SeedWatchOfficerShift2 = int(seed2)
		l.SeedWatchOfficerShift3 = int(seed3)
		if err := json.Unmarshal(assignments, &l.Assignments); err != nil {
			return nil, fmt.Errorf("failed to decode assignments for list %s: %w", l.ID, err)
		}
		if l.Assignments == nil {
			l.Assignments = make(map[model.TimeSlot]*model.Assignment)
		}
		lists = append(lists, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty lists: %w", err)
	}
	return lists, nil
}

// UpsertList inserts or updates a duty list, serializing its assignment map
// to JSONB.
func (s *Store) UpsertList(ctx context.Context, l *model.DutyList) error {
	assignments, err := json.Marshal(l.Assignments)
	if err != nil {
		return fmt.Errorf("failed to encode assignments for list %s: %w", l.ID, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO duty_list (
			id, period_id, duty_type, start_at, end_at, note, starting_shift, assignments,
			double_night_watch, kitchen_hand_required, chronological_watch_officer,
			seed_watch_officer_shift1, seed_watch_officer_shift2, seed_watch_officer_shift3
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			period_id = EXCLUDED.period_id,
			duty_type = EXCLUDED.duty_type,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			note = EXCLUDED.note,
			starting_shift = EXCLUDED.starting_shift,
			assignments = EXCLUDED.assignments,
			double_night_watch = EXCLUDED.double_night_watch,
			kitchen_hand_required = EXCLUDED.kitchen_hand_required,
			chronological_watch_officer = EXCLUDED.chronological_watch_officer,
			seed_watch_officer_shift1 = EXCLUDED.seed_watch_officer_shift1,
			seed_watch_officer_shift2 = EXCLUDED.seed_watch_officer_shift2,
			seed_watch_officer_shift3 = EXCLUDED.seed_watch_officer_shift3
	`, l.ID, l.PeriodID, string(l.Type), l.Start, l.End, l.Note, int16(l.StartingShift), assignments,
		l.DoubleNightWatch, l.KitchenHandRequired, l.ChronologicalWatchOfficer,
		int16(l.SeedWatchOfficerShift1), int16(l.SeedWatchOfficerShift2), int16(l.SeedWatchOfficerShift3))
	if err != nil {
		return fmt.Errorf("failed to upsert duty list: %w", err)
	}
	return nil
}

// DeleteList removes one duty list.
func (s *Store) DeleteList(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM duty_list WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete duty list: %w", err)
	}
	return nil
}

// DeleteListsForPeriod removes every duty list derived from a period.
func (s *Store) DeleteListsForPeriod(ctx context.Context, periodID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM duty_list WHERE period_id = $1`, periodID); err != nil {
		return fmt.Errorf("failed to delete duty lists for period: %w", err)
	}
	return nil
}

// GetExclusions retrieves all roster exclusions ordered by start date.
func (s *Store) GetExclusions(ctx context.Context) ([]model.RosterExclusion, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, trainee_nr, name, start_date, end_date
		FROM roster_exclusion
		ORDER BY start_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster exclusions: %w", err)
	}
	defer rows.Close()

	var exclusions []model.RosterExclusion
	for rows.Next() {
		var e model.RosterExclusion
		var nr int16
		if err := rows.Scan(&e.ID, &nr, &e.Name, &e.StartDate, &e.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan roster exclusion: %w", err)
		}
		e.TraineeNr = int(nr)
		exclusions = append(exclusions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster exclusions: %w", err)
	}
	return exclusions, nil
}

// UpsertExclusion inserts or updates a roster exclusion.
func (s *Store) UpsertExclusion(ctx context.Context, e model.RosterExclusion) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO roster_exclusion (id, trainee_nr, name, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			trainee_nr = EXCLUDED.trainee_nr,
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date
	`, e.ID, int16(e.TraineeNr), e.Name, e.StartDate, e.EndDate)
	if err != nil {
		return fmt.Errorf("failed to upsert roster exclusion: %w", err)
	}
	return nil
}

// DeleteExclusion removes a roster exclusion.
func (s *Store) DeleteExclusion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM roster_exclusion WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete roster exclusion: %w", err)
	}
	return nil
}

// GetSpecialDuties retrieves all special-duty records ordered by date.
func (s *Store) GetSpecialDuties(ctx context.Context) ([]model.SpecialDuty, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT duty_date, assigned
		FROM special_duty
		ORDER BY duty_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query special duties: %w", err)
	}
	defer rows.Close()

	var duties []model.SpecialDuty
	for rows.Next() {
		var hu model.SpecialDuty
		var date time.Time
		var assigned []int16
		if err := rows.Scan(&date, &assigned); err != nil {
			return nil, fmt.Errorf("failed to scan special duty: %w", err)
		}
		hu.Date = date
		for _, nr := range assigned {
			hu.Assigned = append(hu.Assigned, int(nr))
		}
		duties = append(duties, hu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating special duties: %w", err)
	}
	return duties, nil
}

// UpsertSpecialDuty inserts or replaces the special-duty record of a date.
func (s *Store) UpsertSpecialDuty(ctx context.Context, hu model.SpecialDuty) error {
	assigned := make([]int16, 0, len(hu.Assigned))
	for _, nr := range hu.Assigned {
		assigned = append(assigned, int16(nr))
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO special_duty (duty_date, assigned)
		VALUES ($1, $2)
		ON CONFLICT (duty_date) DO UPDATE SET assigned = EXCLUDED.assigned
	`, model.DateOf(hu.Date), assigned)
	if err != nil {
		return fmt.Errorf("failed to upsert special duty: %w", err)
	}
	return nil
}
