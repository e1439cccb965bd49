package attendance

import "time"

type Status string

const (
	StatusOnTime Status = "on_time"
	StatusLate   Status = "late"
	StatusMissed Status = "missed"
)

// Attendance is one employee-day row: sign-in stamps the status, sign-off
// stamps the end of the working day. One row per (employee, date).
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	SignInTime  *time.Time
	SignOffTime *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
