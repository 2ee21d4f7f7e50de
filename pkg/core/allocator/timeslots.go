package allocator

import (
	"time"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// atSeaSlotOrder is the fixed six-slot at-sea rotation. The shift group of
// each slot is derived from its index in this order.
var atSeaSlotOrder = []model.TimeSlot{
	model.Slot0812,
	model.Slot1215,
	model.Slot1520,
	model.Slot2024,
	model.Slot0004,
	model.Slot0408,
}

var inPortSlotOrder = []model.TimeSlot{
	model.Slot0812,
	model.Slot1216,
	model.Slot1618,
	model.Slot1820,
	model.Slot2022,
	model.Slot2200,
	model.Slot0002,
	model.Slot0204,
	model.Slot0406,
	model.Slot0608,
}

var shoreSlotOrder = []model.TimeSlot{
	model.Slot2200,
	model.Slot0002,
	model.Slot0204,
	model.Slot0406,
	model.Slot0608,
}

// isNightWatch reports whether the slot falls in the night half of the watch
// day. The classification drives the day/night continuity rules.
func isNightWatch(slot model.TimeSlot) bool {
	switch slot {
	case model.Slot2024, model.Slot0004, model.Slot0408,
		model.Slot2200, model.Slot0002, model.Slot0204, model.Slot0406, model.Slot0608:
		return true
	}
	return false
}

func isDayWatch(slot model.TimeSlot) bool {
	switch slot {
	case model.Slot0812, model.Slot1215, model.Slot1520,
		model.Slot1216, model.Slot1618, model.Slot1820, model.Slot2022:
		return true
	}
	return false
}

type slotWindow struct {
	start time.Time
	end   time.Time
}

// slotWindows materializes the concrete time windows of the given slots for
// a watch day beginning at start. Slots before midnight land on start's
// calendar day, slots from midnight on land on the following day (or start's
// own day when the list itself begins after midnight).
func slotWindows(slots []model.TimeSlot, start time.Time) map[model.TimeSlot]slotWindow {
	nextDay := start
	if start.Hour() >= 8 {
		nextDay = start.AddDate(0, 0, 1)
	}

	at := func(base time.Time, hour, minute int) time.Time {
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	}

	windows := make(map[model.TimeSlot]slotWindow, len(slots))
	for _, slot := range slots {
		var w slotWindow
		switch slot {
		case model.Slot0812:
			w = slotWindow{at(start, 8, 1), at(start, 12, 0)}
		case model.Slot1215:
			w = slotWindow{at(start, 12, 0), at(start, 15, 0)}
		case model.Slot1520:
			w = slotWindow{at(start, 15, 0), at(start, 20, 0)}
		case model.Slot2024:
			w = slotWindow{at(start, 20, 0), at(start, 23, 59)}
		case model.Slot0004:
			w = slotWindow{at(nextDay, 0, 0), at(nextDay, 4, 0)}
		case model.Slot0408:
			w = slotWindow{at(nextDay, 4, 0), at(nextDay, 8, 0)}
		case model.Slot1216:
			w = slotWindow{at(start, 12, 0), at(start, 16, 0)}
		case model.Slot1618:
			w = slotWindow{at(start, 16, 0), at(start, 18, 0)}
		case model.Slot1820:
			w = slotWindow{at(start, 18, 0), at(start, 20, 0)}
		case model.Slot2022:
			w = slotWindow{at(start, 20, 0), at(start, 22, 0)}
		case model.Slot2200:
			w = slotWindow{at(start, 22, 0), at(start, 23, 59)}
		case model.Slot0002:
			w = slotWindow{at(nextDay, 0, 0), at(nextDay, 2, 0)}
		case model.Slot0204:
			w = slotWindow{at(nextDay, 2, 0), at(nextDay, 4, 0)}
		case model.Slot0406:
			w = slotWindow{at(nextDay, 4, 0), at(nextDay, 6, 0)}
		case model.Slot0608:
			w = slotWindow{at(nextDay, 6, 0), at(nextDay, 8, 0)}
		default:
			continue
		}
		// End times are exclusive.
		w.end = w.end.Add(-time.Second)
		windows[slot] = w
	}
	return windows
}

// clipSlots keeps, in order, the slots whose window intersects [start, end).
func clipSlots(slots []model.TimeSlot, start, end time.Time) []model.TimeSlot {
	windows := slotWindows(slots, start)
	var clipped []model.TimeSlot
	for _, slot := range slots {
		w, ok := windows[slot]
		if !ok {
			continue
		}
		if w.end.Before(start) || w.start.After(end) {
			continue
		}
		clipped = append(clipped, slot)
	}
	return clipped
}

// atSeaSlots returns the at-sea slots materialized for a list spanning
// [start, end).
func atSeaSlots(start, end time.Time) []model.TimeSlot {
	return clipSlots(atSeaSlotOrder, start, end)
}

// inPortSlots returns the all-day pseudo-slot followed by the in-port slots
// intersecting [start, end).
func inPortSlots(start, end time.Time) []model.TimeSlot {
	return append([]model.TimeSlot{model.SlotAllDay}, clipSlots(inPortSlotOrder, start, end)...)
}

// shoreSlots returns the all-day pseudo-slot followed by the shore night
// slots intersecting [start, end).
func shoreSlots(start, end time.Time) []model.TimeSlot {
	return append([]model.TimeSlot{model.SlotAllDay}, clipSlots(shoreSlotOrder, start, end)...)
}

// splitDayNight partitions slots into day-watch and night-watch groups,
// dropping the all-day pseudo-slot.
func splitDayNight(slots []model.TimeSlot) (day, night []model.TimeSlot) {
	for _, slot := range slots {
		if isDayWatch(slot) {
			day = append(day, slot)
		}
		if isNightWatch(slot) {
			night = append(night, slot)
		}
	}
	return day, night
}

// atSeaShiftFor computes the shift group responsible for an at-sea slot: the
// six slots cycle through the three groups starting from the list's starting
// shift.
func atSeaShiftFor(startingShift model.ShiftGroup, slot model.TimeSlot) model.ShiftGroup {
	for idx, s := range atSeaSlotOrder {
		if s == slot {
			return model.ShiftGroup((idx+int(startingShift)-1)%3 + 1)
		}
	}
	return startingShift
}
