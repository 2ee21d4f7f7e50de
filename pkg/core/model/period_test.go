package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestValidate_ValidPeriod(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyAtSea,
		Start:         mustTime(t, "2024-12-02 13:00"),
		End:           mustTime(t, "2024-12-06 14:00"),
		StartingShift: ShiftGroup2,
	}

	assert.NoError(t, p.Validate())
}

func TestValidate_UnknownType(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyType("Kaj"),
		Start:         mustTime(t, "2024-12-02 13:00"),
		End:           mustTime(t, "2024-12-03 13:00"),
		StartingShift: ShiftGroup1,
	}

	err := p.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown duty type")
}

func TestValidate_EndBeforeStart(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyInPort,
		Start:         mustTime(t, "2024-12-03 13:00"),
		End:           mustTime(t, "2024-12-02 13:00"),
		StartingShift: ShiftGroup1,
	}

	err := p.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not after start")
}

func TestValidate_SeedOutsideBand(t *testing.T) {
	p := &DutyPeriod{
		Type:                   DutyAtSea,
		Start:                  mustTime(t, "2024-12-02 13:00"),
		End:                    mustTime(t, "2024-12-03 13:00"),
		StartingShift:          ShiftGroup1,
		SeedWatchOfficerShift1: 25, // band is 1-20
	}

	err := p.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid watch-officer seed")
}

func TestValidate_ReservedSeed(t *testing.T) {
	p := &DutyPeriod{
		Type:                   DutyAtSea,
		Start:                  mustTime(t, "2024-12-02 13:00"),
		End:                    mustTime(t, "2024-12-03 13:00"),
		StartingShift:          ShiftGroup3,
		SeedWatchOfficerShift3: 61,
	}

	err := p.Validate()
	assert.Error(t, err)
}

func TestExpandToDutyLists_SplitsAtWatchDayBoundaries(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyAtSea,
		Start:         mustTime(t, "2024-12-02 13:00"),
		End:           mustTime(t, "2024-12-06 14:00"),
		StartingShift: ShiftGroup2,
	}

	lists, err := p.ExpandToDutyLists()
	require.NoError(t, err)
	require.Len(t, lists, 5)

	assert.Equal(t, mustTime(t, "2024-12-02 13:00"), lists[0].Start)
	assert.Equal(t, mustTime(t, "2024-12-03 08:00"), lists[0].End)
	assert.Equal(t, mustTime(t, "2024-12-03 08:00"), lists[1].Start)
	assert.Equal(t, mustTime(t, "2024-12-04 08:00"), lists[1].End)
	assert.Equal(t, mustTime(t, "2024-12-06 08:00"), lists[4].Start)
	assert.Equal(t, mustTime(t, "2024-12-06 14:00"), lists[4].End)

	// At-sea days all keep the period's starting shift.
	for _, list := range lists {
		assert.Equal(t, ShiftGroup2, list.StartingShift)
		assert.Equal(t, p.Type, list.Type)
	}
}

func TestExpandToDutyLists_ShorterThanWatchDay(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyInPort,
		Start:         mustTime(t, "2024-12-02 10:00"),
		End:           mustTime(t, "2024-12-02 20:00"),
		StartingShift: ShiftGroup1,
	}

	lists, err := p.ExpandToDutyLists()
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, p.Start, lists[0].Start)
	assert.Equal(t, p.End, lists[0].End)
}

func TestExpandToDutyLists_InPortShiftRotates(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyInPort,
		Start:         mustTime(t, "2024-12-02 08:00"),
		End:           mustTime(t, "2024-12-08 08:00"),
		StartingShift: ShiftGroup2,
	}

	lists, err := p.ExpandToDutyLists()
	require.NoError(t, err)
	require.Len(t, lists, 6)

	want := []ShiftGroup{2, 3, 1, 2, 3, 1}
	for i, list := range lists {
		assert.Equal(t, want[i], list.StartingShift, "list %d", i)
	}
}

func TestExpandToDutyLists_WeekendKeepsOneShift(t *testing.T) {
	p := &DutyPeriod{
		Type:          DutyShoreWeekend,
		Start:         mustTime(t, "2024-12-06 16:00"),
		End:           mustTime(t, "2024-12-09 08:00"),
		StartingShift: ShiftGroup3,
	}

	lists, err := p.ExpandToDutyLists()
	require.NoError(t, err)
	require.Len(t, lists, 3)
	for _, list := range lists {
		assert.Equal(t, ShiftGroup3, list.StartingShift)
	}
}

func TestExpandToDutyLists_CopiesPolicyFlags(t *testing.T) {
	p := &DutyPeriod{
		Type:                      DutyShore,
		Start:                     mustTime(t, "2024-12-02 08:00"),
		End:                       mustTime(t, "2024-12-03 08:00"),
		StartingShift:             ShiftGroup1,
		DoubleNightWatch:          true,
		KitchenHandRequired:       true,
		ChronologicalWatchOfficer: true,
		SeedWatchOfficerShift1:    5,
	}

	lists, err := p.ExpandToDutyLists()
	require.NoError(t, err)
	require.Len(t, lists, 1)

	list := lists[0]
	assert.True(t, list.DoubleNightWatch)
	assert.True(t, list.KitchenHandRequired)
	assert.True(t, list.ChronologicalWatchOfficer)
	assert.Equal(t, 5, list.SeedWatchOfficerShift1)
	assert.Equal(t, p.ID, list.PeriodID)
}
