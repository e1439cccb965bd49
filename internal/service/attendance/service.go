package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly/hrms-backend-go/internal/domain/attendance"
)

// lateCutoff is the wall-clock time after which a sign-in counts as late.
const lateCutoff = "09:15"

// AttendanceService records the daily sign-in/sign-off of employees. One
// attendance row exists per employee per day.
type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// SignIn opens today's attendance row. Signing in past the cutoff records
// the day as late. A second sign-in the same day fails.
func (s *AttendanceService) SignIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	status := attendance.StatusOnTime
	cutoff, _ := time.Parse("15:04", lateCutoff)
	if now.Hour() > cutoff.Hour() || (now.Hour() == cutoff.Hour() && now.Minute() > cutoff.Minute()) {
		status = attendance.StatusLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
		SignInTime: &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// SignOff stamps the end of today's attendance row and returns it.
func (s *AttendanceService) SignOff(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if err := s.attendanceRepo.SetSignOff(ctx, employeeID, day, now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	stamped, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance after sign-off: %w", err)
	}

	return attendance.NewAttendanceResponse(stamped), nil
}

// MyMonth lists the caller's attendance for one month.
func (s *AttendanceService) MyMonth(ctx context.Context, employeeID string, month time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, employeeID, month.Year(), month.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}
	return responses, nil
}
