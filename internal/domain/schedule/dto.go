package schedule

import (
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
)

type AssignSlotRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftType  string `json:"shift_type"`
	WeekStart  string `json:"week_start"`
	Day        string `json:"day"`
}

func (r *AssignSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: morning, evening",
		})
	}
	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeekRequest struct {
	WeekStart string `json:"week_start"`
}

func (r *WeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start is required",
		})
	} else if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SlotResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftType  string `json:"shift_type"`
	WeekStart  string `json:"week_start"`
	Day        string `json:"day"`
}

// WeekView lists, for every day of the week, the morning and evening
// assignee ids (null when unassigned). Submitted reflects the week-status
// row, not any per-slot flag.
type WeekView struct {
	Assignments map[string][2]*string `json:"assignments"`
	Submitted   bool                  `json:"submitted"`
}

type DayAssignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DayView resolves both shifts of a single day, including the underlying
// slot ids task queries are scoped by.
type DayView struct {
	Morning           *DayAssignee `json:"morning"`
	Evening           *DayAssignee `json:"evening"`
	MorningScheduleID *string      `json:"morning_schedule_id"`
	EveningScheduleID *string      `json:"evening_schedule_id"`
}

type MyShift struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type MyDay struct {
	Morning *MyShift `json:"morning"`
	Evening *MyShift `json:"evening"`
}

// MyWeekView is the caller-scoped week: date -> shifts the caller works.
type MyWeekView struct {
	Days map[string]MyDay `json:"days"`
}
