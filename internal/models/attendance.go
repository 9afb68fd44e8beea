package models

const (
	StatusPresent   = "PRESENT"
	StatusAbsent    = "ABSENT"
	StatusHalfDay   = "HALF_DAY"
	StatusHoliday   = "HOLIDAY"
	StatusWeeklyOff = "WEEKLY_OFF"
	// StatusUnmarked is never persisted: a date without a record is the
	// unmarked state. It only appears on read responses for empty days.
	StatusUnmarked = "UNMARKED"
)

const (
	ShiftMorning   = "MORNING"
	ShiftAfternoon = "AFTERNOON"
	ShiftNight     = "NIGHT"
	ShiftGeneral   = "GENERAL"
)

const (
	LeavePrivileged = "PRIVILEGED"
	LeaveCasual     = "CASUAL"
	LeaveSick       = "SICK"
	LeaveOther      = "OTHER"
)

// DateLayout is the record key format within a profile.
const DateLayout = "2006-01-02"

type DayRecord struct {
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	Shift           string   `json:"shift"`
	OvertimeMinutes int      `json:"overtimeMinutes"`
	LeaveType       string   `json:"leaveType,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

func IsPersistableStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusHoliday, StatusWeeklyOff:
		return true
	}
	return false
}

func IsValidShift(shift string) bool {
	switch shift {
	case ShiftMorning, ShiftAfternoon, ShiftNight, ShiftGeneral:
		return true
	}
	return false
}

func IsValidLeaveType(leaveType string) bool {
	switch leaveType {
	case LeavePrivileged, LeaveCasual, LeaveSick, LeaveOther:
		return true
	}
	return false
}

// Normalized returns a copy of the record with the cross-field constraints
// applied: overtime clamped to zero or more, leave type kept only under
// ABSENT, shift defaulted to GENERAL when unrecognized.
func (record DayRecord) Normalized() DayRecord {
	if record.OvertimeMinutes < 0 {
		record.OvertimeMinutes = 0
	}
	if !IsValidShift(record.Shift) {
		record.Shift = ShiftGeneral
	}
	if record.Status != StatusAbsent || !IsValidLeaveType(record.LeaveType) {
		record.LeaveType = ""
	}
	return record
}
