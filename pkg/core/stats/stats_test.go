package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

func listWith(t *testing.T, slot model.TimeSlot, g model.ShiftGroup, tasks map[model.Task]int) *model.DutyList {
	t.Helper()
	list := &model.DutyList{
		Type:        model.DutyAtSea,
		Start:       time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	a := list.EnsureSlot(slot, g)
	for task, nr := range tasks {
		a.Tasks[task] = nr
	}
	return list
}

func TestCountAssignments_EmptyCollectionIsZeroSeeded(t *testing.T) {
	counts := CountAssignments(nil)

	// 60 eligible trainees, every task bucket present at zero.
	assert.Len(t, counts, 60*len(model.AllTasks))
	assert.Equal(t, 0, counts[Key{model.TaskLookout, 14}])
}

func TestCountAssignments_CountsPerTaskAndTrainee(t *testing.T) {
	lists := []*model.DutyList{
		listWith(t, model.Slot0812, model.ShiftGroup1, map[model.Task]int{model.TaskLookout: 14}),
		listWith(t, model.Slot1215, model.ShiftGroup1, map[model.Task]int{model.TaskLookout: 14, model.TaskHelmsman: 3}),
	}

	counts := CountAssignments(lists)
	assert.Equal(t, 2, counts[Key{model.TaskLookout, 14}])
	assert.Equal(t, 1, counts[Key{model.TaskHelmsman, 3}])
	assert.Equal(t, 0, counts[Key{model.TaskHelmsman, 14}])
}

func TestCountAssignments_MergesNightWatchVariants(t *testing.T) {
	lists := []*model.DutyList{
		listWith(t, model.Slot0002, model.ShiftGroup1, map[model.Task]int{model.TaskNightWatchA: 8}),
		listWith(t, model.Slot0204, model.ShiftGroup1, map[model.Task]int{model.TaskNightWatchB: 8}),
	}

	counts := CountAssignments(lists)
	assert.Equal(t, 2, counts[Key{model.TaskNightWatchA, 8}])
	assert.Equal(t, 0, counts[Key{model.TaskNightWatchB, 8}])
}

func TestCountAssignments_SkipsPlaceholdersAndReserved(t *testing.T) {
	lists := []*model.DutyList{
		listWith(t, model.Slot0812, model.ShiftGroup1, map[model.Task]int{
			model.TaskLookout:     0,
			model.TaskKitchenHand: 61,
		}),
	}

	counts := CountAssignments(lists)
	for key := range counts {
		assert.NotEqual(t, 0, key.TraineeNr)
		assert.NotEqual(t, 61, key.TraineeNr)
	}
	assert.Equal(t, 0, counts[Key{model.TaskLookout, 1}])
}

func TestFilterByTask(t *testing.T) {
	lists := []*model.DutyList{
		listWith(t, model.Slot0812, model.ShiftGroup1, map[model.Task]int{model.TaskLookout: 14, model.TaskHelmsman: 3}),
	}

	filtered := FilterByTask(model.TaskLookout, CountAssignments(lists))
	require.Len(t, filtered, 60)
	assert.Equal(t, 1, filtered[Key{model.TaskLookout, 14}])
	for key := range filtered {
		assert.Equal(t, model.TaskLookout, key.Task)
	}
}

func TestFilterByShiftGroup(t *testing.T) {
	lists := []*model.DutyList{
		listWith(t, model.Slot0812, model.ShiftGroup2, map[model.Task]int{model.TaskLookout: 25}),
	}

	filtered := FilterByShiftGroup(model.ShiftGroup2, CountAssignments(lists))
	assert.Equal(t, 1, filtered[Key{model.TaskLookout, 25}])
	for key := range filtered {
		assert.GreaterOrEqual(t, key.TraineeNr, 21)
		assert.LessOrEqual(t, key.TraineeNr, 40)
	}
}
