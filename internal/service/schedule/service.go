package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
)

// ScheduleService is the weekly shift assignment board: one employee per
// (shift, week, day) slot, a week-level submission lock, and day/week views
// for admins and for the assigned employee.
type ScheduleService struct {
	slotRepo       schedule.SlotRepository
	weekStatusRepo schedule.WeekStatusRepository
	employeeRepo   employee.EmployeeRepository
}

func NewScheduleService(
	slotRepo schedule.SlotRepository,
	weekStatusRepo schedule.WeekStatusRepository,
	employeeRepo employee.EmployeeRepository,
) *ScheduleService {
	return &ScheduleService{
		slotRepo:       slotRepo,
		weekStatusRepo: weekStatusRepo,
		employeeRepo:   employeeRepo,
	}
}

// Assign upserts the slot keyed by (shift_type, week_start, day). Assigning
// an occupied slot silently replaces the previous occupant; callers that
// care must read the week first.
func (s *ScheduleService) Assign(ctx context.Context, req schedule.AssignSlotRequest) (schedule.SlotResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.SlotResponse{}, err
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	day, _ := time.Parse("2006-01-02", req.Day)

	slot, err := s.slotRepo.Upsert(ctx, schedule.Slot{
		EmployeeID: req.EmployeeID,
		ShiftType:  schedule.ShiftType(req.ShiftType),
		WeekStart:  weekStart,
		Day:        day,
	})
	if err != nil {
		return schedule.SlotResponse{}, fmt.Errorf("failed to assign schedule slot: %w", err)
	}

	return schedule.SlotResponse{
		ID:         slot.ID,
		EmployeeID: slot.EmployeeID,
		ShiftType:  string(slot.ShiftType),
		WeekStart:  slot.WeekStart.Format("2006-01-02"),
		Day:        slot.Day.Format("2006-01-02"),
	}, nil
}

// GetWeek returns the assignment pair for each of the seven days starting at
// weekStart, plus the week's submission flag.
func (s *ScheduleService) GetWeek(ctx context.Context, weekStart time.Time) (schedule.WeekView, error) {
	slots, err := s.slotRepo.GetByWeek(ctx, weekStart)
	if err != nil {
		return schedule.WeekView{}, fmt.Errorf("failed to get week slots: %w", err)
	}

	view := schedule.WeekView{
		Assignments: make(map[string][2]*string, 7),
	}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		view.Assignments[day] = [2]*string{nil, nil}
	}
	for _, slot := range slots {
		day := slot.Day.Format("2006-01-02")
		pair := view.Assignments[day]
		employeeID := slot.EmployeeID
		if slot.ShiftType == schedule.ShiftMorning {
			pair[0] = &employeeID
		} else {
			pair[1] = &employeeID
		}
		view.Assignments[day] = pair
	}

	status, err := s.weekStatusRepo.Get(ctx, weekStart)
	if err != nil {
		return schedule.WeekView{}, fmt.Errorf("failed to get week status: %w", err)
	}
	view.Submitted = status.Submitted

	return view, nil
}

// ResetWeek drops every slot of the week (owned tasks cascade) and clears
// the submission lock.
func (s *ScheduleService) ResetWeek(ctx context.Context, weekStart time.Time) error {
	if err := s.slotRepo.DeleteByWeek(ctx, weekStart); err != nil {
		return fmt.Errorf("failed to delete week slots: %w", err)
	}
	if err := s.weekStatusRepo.Delete(ctx, weekStart); err != nil {
		return fmt.Errorf("failed to delete week status: %w", err)
	}
	return nil
}

// SubmitWeek locks the week. Submitting twice is a no-op.
func (s *ScheduleService) SubmitWeek(ctx context.Context, weekStart time.Time) error {
	if err := s.weekStatusRepo.MarkSubmitted(ctx, weekStart); err != nil {
		return fmt.Errorf("failed to submit week: %w", err)
	}
	return nil
}

// GetDay resolves both shifts of one day to the assigned employee, with the
// slot ids task queries are scoped by.
func (s *ScheduleService) GetDay(ctx context.Context, day time.Time) (schedule.DayView, error) {
	slots, err := s.slotRepo.GetByDay(ctx, day)
	if err != nil {
		return schedule.DayView{}, fmt.Errorf("failed to get day slots: %w", err)
	}

	var view schedule.DayView
	for _, slot := range slots {
		name := ""
		if slot.EmployeeName != nil {
			name = *slot.EmployeeName
		}
		assignee := &schedule.DayAssignee{ID: slot.EmployeeID, Name: name}
		slotID := slot.ID
		if slot.ShiftType == schedule.ShiftMorning {
			view.Morning = assignee
			view.MorningScheduleID = &slotID
		} else {
			view.Evening = assignee
			view.EveningScheduleID = &slotID
		}
	}

	return view, nil
}

// GetMyWeek is the caller-scoped week view. Shift start/end times are the
// fixed per-shift windows, not stored per slot.
func (s *ScheduleService) GetMyWeek(ctx context.Context, employeeID string, weekStart time.Time) (schedule.MyWeekView, error) {
	slots, err := s.slotRepo.GetByEmployeeAndWeek(ctx, employeeID, weekStart)
	if err != nil {
		return schedule.MyWeekView{}, fmt.Errorf("failed to get employee week slots: %w", err)
	}

	view := schedule.MyWeekView{Days: make(map[string]schedule.MyDay, 7)}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		view.Days[day] = schedule.MyDay{}
	}
	for _, slot := range slots {
		day := slot.Day.Format("2006-01-02")
		entry := view.Days[day]
		window := schedule.WindowFor(slot.ShiftType)
		shift := &schedule.MyShift{
			Name:      string(slot.ShiftType),
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		}
		if slot.ShiftType == schedule.ShiftMorning {
			entry.Morning = shift
		} else {
			entry.Evening = shift
		}
		view.Days[day] = entry
	}

	return view, nil
}
