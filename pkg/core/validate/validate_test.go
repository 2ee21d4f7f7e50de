package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

func TestAssignment_NoConflict(t *testing.T) {
	a := model.NewAssignment(model.ShiftGroup1)
	a.Tasks[model.TaskWatchOfficer] = 1
	a.Tasks[model.TaskLookout] = 2
	a.Tasks[model.TaskHelmsman] = 3

	assert.Nil(t, Assignment(model.Slot0812, a))
}

func TestAssignment_DuplicateTrainee(t *testing.T) {
	a := model.NewAssignment(model.ShiftGroup1)
	a.Tasks[model.TaskWatchOfficer] = 7
	a.Tasks[model.TaskLookout] = 7

	conflict := Assignment(model.Slot0812, a)
	require.NotNil(t, conflict)
	assert.Equal(t, model.Slot0812, conflict.Slot)
	assert.Equal(t, 7, conflict.NrA)
	assert.Equal(t, conflict.NrA, conflict.NrB)
}

func TestAssignment_PlaceholdersIgnored(t *testing.T) {
	a := model.NewAssignment(model.ShiftGroup1)
	a.Tasks[model.TaskWatchOfficer] = 0
	a.Tasks[model.TaskLookout] = 0

	assert.Nil(t, Assignment(model.Slot0812, a))
}

func TestDutyList_FirstConflictWins(t *testing.T) {
	list := &model.DutyList{Assignments: make(map[model.TimeSlot]*model.Assignment)}

	clean := list.EnsureSlot(model.Slot0812, model.ShiftGroup1)
	clean.Tasks[model.TaskLookout] = 1

	bad := list.EnsureSlot(model.Slot1215, model.ShiftGroup2)
	bad.Tasks[model.TaskMessenger] = 22
	bad.Tasks[model.TaskHelmsman] = 22

	conflict := DutyList(list)
	require.NotNil(t, conflict)
	assert.Equal(t, model.Slot1215, conflict.Slot)
	assert.Equal(t, 22, conflict.NrA)
}

func TestDutyList_CleanList(t *testing.T) {
	list := &model.DutyList{Assignments: make(map[model.TimeSlot]*model.Assignment)}
	a := list.EnsureSlot(model.Slot0812, model.ShiftGroup1)
	a.Tasks[model.TaskLookout] = 1
	a.Tasks[model.TaskMessenger] = 2

	assert.Nil(t, DutyList(list))
}

func TestSpecialDuty_ClashInEarlyDaySlot(t *testing.T) {
	list := &model.DutyList{
		Type:        model.DutyInPort,
		Start:       time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	a := list.EnsureSlot(model.Slot0812, model.ShiftGroup1)
	a.Tasks[model.TaskGangwayWatchA] = 9

	hu := &model.SpecialDuty{Date: list.Start, Assigned: []int{9}}

	conflict := SpecialDuty(list, hu)
	require.NotNil(t, conflict)
	assert.Equal(t, model.Slot0812, conflict.Slot)
	assert.Equal(t, model.TaskSpecialDuty, conflict.TaskB)
}

func TestSpecialDuty_WatchOfficerExempt(t *testing.T) {
	list := &model.DutyList{
		Type:        model.DutyInPort,
		Start:       time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	a := list.EnsureSlot(model.SlotAllDay, model.ShiftGroup1)
	a.Tasks[model.TaskWatchOfficer] = 9

	hu := &model.SpecialDuty{Date: list.Start, Assigned: []int{9}}

	assert.Nil(t, SpecialDuty(list, hu))
}

func TestSpecialDuty_LateSlotsUnchecked(t *testing.T) {
	list := &model.DutyList{
		Type:        model.DutyInPort,
		Start:       time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		Assignments: make(map[model.TimeSlot]*model.Assignment),
	}
	a := list.EnsureSlot(model.Slot1820, model.ShiftGroup1)
	a.Tasks[model.TaskGangwayWatchA] = 9

	hu := &model.SpecialDuty{Date: list.Start, Assigned: []int{9}}

	assert.Nil(t, SpecialDuty(list, hu))
}
