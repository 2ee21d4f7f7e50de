package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestAtSeaSlots_FullWatchDay(t *testing.T) {
	slots := atSeaSlots(day(t, "2024-12-03 08:00"), day(t, "2024-12-04 08:00"))

	assert.Equal(t, []model.TimeSlot{
		model.Slot0812,
		model.Slot1215,
		model.Slot1520,
		model.Slot2024,
		model.Slot0004,
		model.Slot0408,
	}, slots)
}

func TestAtSeaSlots_AfternoonStartDropsMorning(t *testing.T) {
	// A list starting at 13:00 begins mid-way through 12-15; 08-12 is gone.
	slots := atSeaSlots(day(t, "2024-12-02 13:00"), day(t, "2024-12-03 08:00"))

	assert.NotContains(t, slots, model.Slot0812)
	assert.Contains(t, slots, model.Slot1215)
	assert.Contains(t, slots, model.Slot0408)
}

func TestAtSeaSlots_MorningTailFragment(t *testing.T) {
	// The closing fragment 08:00-14:00 covers only the first two slots.
	slots := atSeaSlots(day(t, "2024-12-06 08:00"), day(t, "2024-12-06 14:00"))

	assert.Equal(t, []model.TimeSlot{model.Slot0812, model.Slot1215}, slots)
}

func TestInPortSlots_AllDayFirst(t *testing.T) {
	slots := inPortSlots(day(t, "2024-12-03 08:00"), day(t, "2024-12-04 08:00"))

	require.NotEmpty(t, slots)
	assert.Equal(t, model.SlotAllDay, slots[0])
	assert.Len(t, slots, 11)
}

func TestShoreSlots_NightOnly(t *testing.T) {
	slots := shoreSlots(day(t, "2024-12-03 08:00"), day(t, "2024-12-04 08:00"))

	assert.Equal(t, []model.TimeSlot{
		model.SlotAllDay,
		model.Slot2200,
		model.Slot0002,
		model.Slot0204,
		model.Slot0406,
		model.Slot0608,
	}, slots)
}

func TestAtSeaShiftFor_CyclesFromStartingShift(t *testing.T) {
	want := map[model.TimeSlot]model.ShiftGroup{
		model.Slot0812: 2,
		model.Slot1215: 3,
		model.Slot1520: 1,
		model.Slot2024: 2,
		model.Slot0004: 3,
		model.Slot0408: 1,
	}
	for slot, g := range want {
		assert.Equal(t, g, atSeaShiftFor(model.ShiftGroup2, slot), "slot %s", slot)
	}
}

func TestSplitDayNight(t *testing.T) {
	dayS, night := splitDayNight(inPortSlots(day(t, "2024-12-03 08:00"), day(t, "2024-12-04 08:00")))

	assert.Equal(t, []model.TimeSlot{
		model.Slot0812, model.Slot1216, model.Slot1618, model.Slot1820, model.Slot2022,
	}, dayS)
	assert.Equal(t, []model.TimeSlot{
		model.Slot2200, model.Slot0002, model.Slot0204, model.Slot0406, model.Slot0608,
	}, night)
}

func TestIsNightWatch(t *testing.T) {
	assert.True(t, isNightWatch(model.Slot0004))
	assert.True(t, isNightWatch(model.Slot0406))
	assert.False(t, isNightWatch(model.Slot1215))
	assert.False(t, isNightWatch(model.SlotAllDay))
}
