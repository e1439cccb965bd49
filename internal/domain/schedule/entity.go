package schedule

import "time"

type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
)

var ShiftTypeValues = []string{
	string(ShiftMorning),
	string(ShiftEvening),
}

// Slot assigns one employee to one shift on one day. At most one slot exists
// per (shift_type, week_start, day); assigning over an occupied key replaces
// the previous occupant.
type Slot struct {
	ID         string
	EmployeeID string
	ShiftType  ShiftType
	WeekStart  time.Time
	Day        time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// WeekStatus is the week-level submission lock, one row per week.
type WeekStatus struct {
	WeekStart   time.Time
	Submitted   bool
	SubmittedAt *time.Time
}

// ShiftWindow is the fixed wall-clock window of a shift type. Shift windows
// are not stored per slot; they are a static lookup.
type ShiftWindow struct {
	StartTime string
	EndTime   string
}

var shiftWindows = map[ShiftType]ShiftWindow{
	ShiftMorning: {StartTime: "06:00", EndTime: "15:00"},
	ShiftEvening: {StartTime: "15:00", EndTime: "00:00"},
}

func WindowFor(shift ShiftType) ShiftWindow {
	return shiftWindows[shift]
}
