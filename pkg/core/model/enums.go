package model

import "fmt"

// reservedKitchenNumbers are the trainee numbers permanently detached to the
// galley. They never enter a selection pool and are skipped when rotating
// watch officers through a shift group's band.
var reservedKitchenNumbers = []int{0, 61, 62, 63}

// IsReservedKitchenNumber reports whether nr is one of the permanently
// reserved kitchen-hand trainee numbers.
func IsReservedKitchenNumber(nr int) bool {
	for _, k := range reservedKitchenNumbers {
		if nr == k {
			return true
		}
	}
	return false
}

// Task is a duty role a trainee can hold within one time slot.
// The values are the wire values of stored roster files and must
// round-trip through JSON unchanged.
type Task string

const (
	TaskWatchOfficer    Task = "Vagthavende ELEV"
	TaskMessenger       Task = "Ordonnans"
	TaskLookout         Task = "Udkig"
	TaskRadioWatch      Task = "Radiovagt"
	TaskHelmsman        Task = "Rorgænger"
	TaskDeploymentHandA Task = "Udsætningsgast A"
	TaskDeploymentHandB Task = "Udsætningsgast B"
	TaskDeploymentHandC Task = "Udsætningsgast C"
	TaskDeploymentHandD Task = "Udsætningsgast D"
	TaskDeploymentHandE Task = "Udsætningsgast E"
	TaskBearingTakerA   Task = "Pejlegast A"
	// TaskBearingTakerB keeps the misspelled historical wire value so that
	// existing roster files keep loading.
	TaskBearingTakerB Task = "Pejlagast B"
	TaskKitchenHand   Task = "Dækselev i kabys"
	TaskGangwayWatchA Task = "Landgangsvagt A"
	TaskGangwayWatchB Task = "Landgangsvagt B"
	TaskNightWatchA   Task = "Nattevagt A"
	TaskNightWatchB   Task = "Nattevagt B"
	TaskShiftChange   Task = "ELEV Vagtskifte"
	TaskSpecialDuty   Task = "HU"
)

// AllTasks lists every task in a fixed, stable order. Statistics seeding and
// conflict scanning iterate this list so results do not depend on map order.
var AllTasks = []Task{
	TaskWatchOfficer,
	TaskMessenger,
	TaskLookout,
	TaskRadioWatch,
	TaskHelmsman,
	TaskDeploymentHandA,
	TaskDeploymentHandB,
	TaskDeploymentHandC,
	TaskDeploymentHandD,
	TaskDeploymentHandE,
	TaskBearingTakerA,
	TaskBearingTakerB,
	TaskKitchenHand,
	TaskGangwayWatchA,
	TaskGangwayWatchB,
	TaskNightWatchA,
	TaskNightWatchB,
	TaskShiftChange,
	TaskSpecialDuty,
}

// DutyType categorizes a duty period and selects the allocation strategy.
type DutyType string

const (
	DutyAtSea        DutyType = "Søvagt"
	DutyInPort       DutyType = "Havn"
	DutyShore        DutyType = "Holmen"
	DutyShoreWeekend DutyType = "Weekend"
)

func (t DutyType) IsValid() bool {
	switch t {
	case DutyAtSea, DutyInPort, DutyShore, DutyShoreWeekend:
		return true
	}
	return false
}

// ShiftGroup is one of the three rotating 20-trainee cohorts.
type ShiftGroup int

const (
	ShiftGroup1 ShiftGroup = 1
	ShiftGroup2 ShiftGroup = 2
	ShiftGroup3 ShiftGroup = 3
)

// Band returns the inclusive trainee-number band of the shift group.
func (g ShiftGroup) Band() (lo, hi int) {
	switch g {
	case ShiftGroup1:
		return 1, 20
	case ShiftGroup2:
		return 21, 40
	default:
		return 41, 60
	}
}

// ShiftGroupForTrainee derives the shift group of a trainee number from its
// numeric band.
func ShiftGroupForTrainee(nr int) (ShiftGroup, error) {
	switch {
	case nr >= 1 && nr <= 20:
		return ShiftGroup1, nil
	case nr >= 21 && nr <= 40:
		return ShiftGroup2, nil
	case nr >= 41 && nr <= 60:
		return ShiftGroup3, nil
	}
	return 0, fmt.Errorf("trainee number %d is outside every shift group band", nr)
}

// TimeSlot is an enumerated time window within one watch day.
type TimeSlot string

const (
	// SlotAllDay holds the once-per-day roles of in-port and shore lists.
	SlotAllDay TimeSlot = "ALL_DAY"

	// At-sea watch windows.
	Slot0812 TimeSlot = "08-12"
	Slot1215 TimeSlot = "12-15"
	Slot1520 TimeSlot = "15-20"
	Slot2024 TimeSlot = "20-24"
	Slot0004 TimeSlot = "00-04"
	Slot0408 TimeSlot = "04-08"

	// In-port and shore watch windows.
	Slot1216 TimeSlot = "12-16"
	Slot1618 TimeSlot = "16-18"
	Slot1820 TimeSlot = "18-20"
	Slot2022 TimeSlot = "20-22"
	Slot2200 TimeSlot = "22-24"
	Slot0002 TimeSlot = "00-02"
	Slot0204 TimeSlot = "02-04"
	Slot0406 TimeSlot = "04-06"
	Slot0608 TimeSlot = "06-08"
)

// AllTimeSlots lists every slot in a fixed, stable order (all-day first,
// then chronologically through the watch day).
var AllTimeSlots = []TimeSlot{
	SlotAllDay,
	Slot0812,
	Slot1215,
	Slot1216,
	Slot1520,
	Slot1618,
	Slot1820,
	Slot2022,
	Slot2024,
	Slot2200,
	Slot0002,
	Slot0004,
	Slot0204,
	Slot0406,
	Slot0408,
	Slot0608,
}
