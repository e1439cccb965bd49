package leave

import "time"

type LeaveType string

const (
	TypeAnnual    LeaveType = "Annual Leave"
	TypeEmergency LeaveType = "Emergency Leave"
	TypeSick      LeaveType = "Sick Leave"
)

var LeaveTypeValues = []string{
	string(TypeAnnual),
	string(TypeEmergency),
	string(TypeSick),
}

// Unlimited reports whether the type has no ledger balance. Sick leave is
// never decremented.
func (t LeaveType) Unlimited() bool {
	return t == TypeSick
}

// Balance is one ledger row: remaining days per (employee, leave type).
// A nil Remaining means unlimited.
type Balance struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	Remaining  *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RequestStatus int

const (
	StatusPending  RequestStatus = 0
	StatusApproved RequestStatus = 1
	StatusRejected RequestStatus = 2
)

func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Terminal reports whether no further transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// Request is an employee-submitted leave request. Status transitions once,
// by an admin; IsSeen flips the first time the owner views a decided request.
type Request struct {
	ID            string
	EmployeeID    string
	Type          LeaveType
	StartDate     time.Time
	EndDate       *time.Time
	Message       string
	Status        RequestStatus
	IsSeen        bool
	AdminResponse *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relationships (for responses)
	EmployeeName *string
}
