package allocator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/stats"
)

func seeded(seed int64) *Allocator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestSelectBest_HighestScoreWins(t *testing.T) {
	a := seeded(1)
	nr, ok := a.selectBest([]candidate{
		{nr: 1, score: -3},
		{nr: 2, score: -1},
		{nr: 3, score: -2},
	})
	require.True(t, ok)
	assert.Equal(t, 2, nr)
}

func TestSelectBest_EmptyPool(t *testing.T) {
	a := seeded(1)
	_, ok := a.selectBest(nil)
	assert.False(t, ok)
}

func TestSelectBest_TieBreakStaysInTie(t *testing.T) {
	a := seeded(7)
	for i := 0; i < 50; i++ {
		nr, ok := a.selectBest([]candidate{
			{nr: 4, score: 0},
			{nr: 9, score: 0},
			{nr: 2, score: -5},
		})
		require.True(t, ok)
		assert.Contains(t, []int{4, 9}, nr)
	}
}

func TestPickLeastUsed_PrefersLowestCount(t *testing.T) {
	a := seeded(1)
	table := map[stats.Key]int{
		{Task: model.TaskLookout, TraineeNr: 1}: 4,
		{Task: model.TaskLookout, TraineeNr: 2}: 1,
		{Task: model.TaskLookout, TraineeNr: 3}: 2,
	}

	nr, err := a.pickLeastUsed(map[int]bool{}, table)
	require.NoError(t, err)
	assert.Equal(t, 2, nr)
}

func TestPickLeastUsed_RespectsExclusions(t *testing.T) {
	a := seeded(1)
	table := map[stats.Key]int{
		{Task: model.TaskLookout, TraineeNr: 1}: 0,
		{Task: model.TaskLookout, TraineeNr: 2}: 5,
	}

	nr, err := a.pickLeastUsed(map[int]bool{1: true}, table)
	require.NoError(t, err)
	assert.Equal(t, 2, nr)
}

func TestPickLeastUsed_ExhaustedPool(t *testing.T) {
	a := seeded(1)
	table := map[stats.Key]int{
		{Task: model.TaskLookout, TraineeNr: 1}: 0,
	}

	_, err := a.pickLeastUsed(map[int]bool{1: true}, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no eligible trainee")
}

func TestPickLeastUsed_DeterministicWithSeed(t *testing.T) {
	table := map[stats.Key]int{
		{Task: model.TaskLookout, TraineeNr: 1}: 0,
		{Task: model.TaskLookout, TraineeNr: 2}: 0,
		{Task: model.TaskLookout, TraineeNr: 3}: 0,
	}

	first, err := seeded(42).pickLeastUsed(map[int]bool{}, table)
	require.NoError(t, err)
	second, err := seeded(42).pickLeastUsed(map[int]bool{}, table)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPickMostDaysSince_NeverAssignedWins(t *testing.T) {
	a := seeded(1)
	today := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)

	// Trainee 1 stood a physical duty yesterday; 2..20 never did. The pick
	// must avoid 1.
	history := &model.DutyList{
		Type:        model.DutyAtSea,
		Start:       time.Date(2024, 12, 9, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	history.EnsureSlot(model.Slot0812, model.ShiftGroup1).Tasks[model.TaskLookout] = 1

	nr, ok := a.pickMostDaysSince(map[int]bool{}, model.Slot2024, model.ShiftGroup1, today, []*model.DutyList{history})
	require.True(t, ok)
	assert.NotEqual(t, 1, nr)
	assert.GreaterOrEqual(t, nr, 1)
	assert.LessOrEqual(t, nr, 20)
}

func TestPickMostDaysSince_SkipsSameCategoryRecency(t *testing.T) {
	a := seeded(1)
	today := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)

	// Every group-1 trainee except 5 is excluded. Trainee 5's last physical
	// duty was a day watch 3 days ago; asking for another day watch skips
	// them, so the pool is empty.
	excluded := make(map[int]bool)
	for nr := 1; nr <= 20; nr++ {
		if nr != 5 {
			excluded[nr] = true
		}
	}

	history := &model.DutyList{
		Type:        model.DutyAtSea,
		Start:       time.Date(2024, 12, 7, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	history.EnsureSlot(model.Slot0812, model.ShiftGroup1).Tasks[model.TaskLookout] = 5

	_, ok := a.pickMostDaysSince(excluded, model.Slot1215, model.ShiftGroup1, today, []*model.DutyList{history})
	assert.False(t, ok)

	// A night slot is the other category, so trainee 5 is eligible again.
	nr, ok := a.pickMostDaysSince(excluded, model.Slot2024, model.ShiftGroup1, today, []*model.DutyList{history})
	require.True(t, ok)
	assert.Equal(t, 5, nr)
}

func TestPickMostDaysSince_YesterdayAllowed(t *testing.T) {
	a := seeded(1)
	today := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)

	// One day of distance is close enough that the category rule does not
	// apply: consecutive days alternate day/night naturally.
	excluded := make(map[int]bool)
	for nr := 1; nr <= 20; nr++ {
		if nr != 5 {
			excluded[nr] = true
		}
	}

	history := &model.DutyList{
		Type:        model.DutyAtSea,
		Start:       time.Date(2024, 12, 9, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	history.EnsureSlot(model.Slot0812, model.ShiftGroup1).Tasks[model.TaskLookout] = 5

	nr, ok := a.pickMostDaysSince(excluded, model.Slot1215, model.ShiftGroup1, today, []*model.DutyList{history})
	require.True(t, ok)
	assert.Equal(t, 5, nr)
}
