package allocator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgstage/vagtplan/pkg/core/model"
	"github.com/georgstage/vagtplan/pkg/core/validate"
)

func fullAtSeaList(t *testing.T, start string, g model.ShiftGroup) *model.DutyList {
	t.Helper()
	s, err := time.Parse("2006-01-02 15:04", start)
	require.NoError(t, err)
	return &model.DutyList{
		ID:            uuid.New(),
		PeriodID:      uuid.New(),
		Type:          model.DutyAtSea,
		Start:         s,
		End:           s.AddDate(0, 0, 1),
		StartingShift: g,
		Assignments:   make(map[model.TimeSlot]*model.Assignment),
	}
}

func TestFillAtSea_FullWatchDay(t *testing.T) {
	a := seeded(1)
	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)

	require.NoError(t, a.FillDutyList(list, &Snapshot{}, nil))

	// All six slots materialized.
	for _, slot := range atSeaSlotOrder {
		assignment, ok := list.Assignments[slot]
		require.True(t, ok, "slot %s missing", slot)

		// Core watch roles filled in every slot.
		for _, task := range []model.Task{
			model.TaskWatchOfficer,
			model.TaskMessenger,
			model.TaskLookout,
			model.TaskRadioWatch,
			model.TaskHelmsman,
			model.TaskDeploymentHandA,
			model.TaskDeploymentHandE,
		} {
			assert.NotZero(t, assignment.Tasks[task], "slot %s task %s", slot, task)
		}

		// Everyone belongs to the slot's shift group.
		g := atSeaShiftFor(model.ShiftGroup1, slot)
		assert.Equal(t, g, assignment.ShiftGroup)
		lo, hi := g.Band()
		for task, nr := range assignment.Tasks {
			assert.GreaterOrEqual(t, nr, lo, "slot %s task %s", slot, task)
			assert.LessOrEqual(t, nr, hi, "slot %s task %s", slot, task)
		}
	}

	// Bearing takers only at 15-20, kitchen hand only on its four slots.
	assert.NotZero(t, list.Assignments[model.Slot1520].Tasks[model.TaskBearingTakerA])
	assert.NotZero(t, list.Assignments[model.Slot1520].Tasks[model.TaskBearingTakerB])
	_, ok := list.Assignments[model.Slot2024].Tasks[model.TaskBearingTakerA]
	assert.False(t, ok)
	assert.NotZero(t, list.Assignments[model.Slot0812].Tasks[model.TaskKitchenHand])
	_, ok = list.Assignments[model.Slot2024].Tasks[model.TaskKitchenHand]
	assert.False(t, ok)

	// No double bookings anywhere.
	assert.Nil(t, validate.DutyList(list))
}

func TestFillAtSea_RespectsExclusions(t *testing.T) {
	a := seeded(3)
	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)

	snap := &Snapshot{
		Exclusions: []model.RosterExclusion{{
			ID:        uuid.New(),
			TraineeNr: 7,
			Name:      "Syg",
			StartDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		}},
	}

	require.NoError(t, a.FillDutyList(list, snap, []int{12}))

	for slot, assignment := range list.Assignments {
		for task, nr := range assignment.Tasks {
			assert.NotEqual(t, 7, nr, "excluded trainee assigned in %s %s", slot, task)
			assert.NotEqual(t, 12, nr, "off-ship trainee assigned in %s %s", slot, task)
		}
	}
}

func TestFillAtSea_PreservesManualAssignments(t *testing.T) {
	a := seeded(1)
	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)
	list.EnsureSlot(model.Slot0812, model.ShiftGroup1).Tasks[model.TaskLookout] = 19

	require.NoError(t, a.FillDutyList(list, &Snapshot{}, nil))

	assert.Equal(t, 19, list.Assignments[model.Slot0812].Tasks[model.TaskLookout])
	assert.Nil(t, validate.DutyList(list))
}

func TestFillAtSea_KitchenHandCarriesOverFromAllDayList(t *testing.T) {
	a := seeded(1)

	// The same calendar date has an in-port list for group 1 with an
	// all-day kitchen hand; the at-sea slots of that group reuse them.
	inPort := &model.DutyList{
		ID:            uuid.New(),
		PeriodID:      uuid.New(),
		Type:          model.DutyInPort,
		Start:         time.Date(2024, 12, 3, 8, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 12, 3, 14, 0, 0, 0, time.UTC),
		StartingShift: model.ShiftGroup1,
		Assignments:   make(map[model.TimeSlot]*model.Assignment),
	}
	inPort.EnsureSlot(model.SlotAllDay, model.ShiftGroup1).Tasks[model.TaskKitchenHand] = 12

	// Trainee 12 was yesterday's watch officer, so the watch-officer pick
	// for today cannot claim them before the kitchen carry-over runs.
	yesterday := fullAtSeaList(t, "2024-12-02 08:00", model.ShiftGroup1)
	yesterday.EnsureSlot(model.Slot0812, model.ShiftGroup1).Tasks[model.TaskWatchOfficer] = 12

	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)
	require.NoError(t, a.FillDutyList(list, &Snapshot{Lists: []*model.DutyList{inPort, yesterday}}, nil))

	// 08-12 belongs to group 1 and carries a kitchen hand.
	assert.Equal(t, 12, list.Assignments[model.Slot0812].Tasks[model.TaskKitchenHand])
}

func TestFillAtSea_BearingTakerBBecomesA(t *testing.T) {
	a := seeded(2)

	// With starting shift 1 the 15-20 slot belongs to group 3, both days.
	yesterday := fullAtSeaList(t, "2024-12-02 08:00", model.ShiftGroup1)
	bearing := yesterday.EnsureSlot(model.Slot1520, model.ShiftGroup3)
	bearing.Tasks[model.TaskBearingTakerA] = 44
	bearing.Tasks[model.TaskBearingTakerB] = 49
	// 49 was also yesterday's group-3 watch officer, so today's watch-officer
	// pick leaves them free for the bearing continuity.
	yesterday.EnsureSlot(model.Slot0408, model.ShiftGroup3).Tasks[model.TaskWatchOfficer] = 49

	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)
	require.NoError(t, a.FillDutyList(list, &Snapshot{Lists: []*model.DutyList{yesterday}}, nil))

	assert.Equal(t, 49, list.Assignments[model.Slot1520].Tasks[model.TaskBearingTakerA])
	assert.Nil(t, validate.DutyList(list))
}

func TestFillDutyList_UnknownType(t *testing.T) {
	a := seeded(1)
	list := fullAtSeaList(t, "2024-12-03 08:00", model.ShiftGroup1)
	list.Type = model.DutyType("Kaj")

	err := a.FillDutyList(list, &Snapshot{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown duty type")
}
