package report

import (
	"github.com/shopspring/decimal"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month      string
	EmployeeID *string
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeStatsRow is the raw per-employee projection the repository
// produces for one month. Attendance buckets partition the month's rows:
// every attendance row lands in exactly one of attended/absented, and
// late/on_time refine attended.
type EmployeeStatsRow struct {
	EmployeeID   string
	EmployeeName string
	Salary       decimal.Decimal
	Attended     int
	Absented     int
	Late         int
	OnTime       int
	TaskTotal    int
	TaskDone     int
	ClientCount  int
}

type TaskStats struct {
	Applicable bool `json:"applicable"`
	Total      int  `json:"total"`
	Completed  int  `json:"completed"`
}

type EmployeeReport struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Attended    int       `json:"attended"`
	Absented    int       `json:"absented"`
	Late        int       `json:"late"`
	OnTime      int       `json:"on_time"`
	Tasks       TaskStats `json:"tasks"`
	ClientCount int       `json:"client_count"`
}

type TopClientHolder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClientCount int    `json:"client_count"`
}

type OrganizationSummary struct {
	Headcount int `json:"headcount"`
	// AverageAttendanceRate is the mean over employees of
	// attended / (attended + absented + late), with 0 for employees
	// without any attendance rows.
	AverageAttendanceRate float64          `json:"average_attendance_rate"`
	TotalPayrollCost      decimal.Decimal  `json:"total_payroll_cost"`
	TopClientHolder       *TopClientHolder `json:"top_client_holder"`
}

type MonthlyReport struct {
	Month     string              `json:"month"`
	Employees []EmployeeReport    `json:"employees"`
	Summary   OrganizationSummary `json:"summary"`
}
