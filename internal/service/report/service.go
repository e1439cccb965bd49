package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffly/hrms-backend-go/internal/domain/report"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
)

// ReportService is a read-only projection over attendance, tasks, clients
// and salaries. It holds no state of its own.
type ReportService struct {
	reportRepo report.ReportRepository
	// taskExempt lists employees whose task block reports as non-applicable.
	taskExempt []string
}

func NewReportService(reportRepo report.ReportRepository, taskExemptEmployeeIDs []string) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		taskExempt: taskExemptEmployeeIDs,
	}
}

// Monthly builds the per-employee stats and the organization summary for
// one month.
func (s *ReportService) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	month, _ := time.Parse("2006-01", req.Month)

	rows, err := s.reportRepo.GetMonthlyEmployeeStats(ctx, month.Year(), month.Month(), req.EmployeeID)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get monthly employee stats: %w", err)
	}

	result := report.MonthlyReport{
		Month:     req.Month,
		Employees: make([]report.EmployeeReport, 0, len(rows)),
	}

	var rateSum float64
	totalPayroll := decimal.Zero
	var top *report.TopClientHolder

	for _, row := range rows {
		emp := report.EmployeeReport{
			ID:          row.EmployeeID,
			Name:        row.EmployeeName,
			Attended:    row.Attended,
			Absented:    row.Absented,
			Late:        row.Late,
			OnTime:      row.OnTime,
			ClientCount: row.ClientCount,
			Tasks: report.TaskStats{
				Applicable: true,
				Total:      row.TaskTotal,
				Completed:  row.TaskDone,
			},
		}
		if validator.IsInSlice(row.EmployeeID, s.taskExempt) {
			emp.Tasks = report.TaskStats{Applicable: false}
		}
		result.Employees = append(result.Employees, emp)

		// Rate denominator counts late separately even though late days are
		// also attended; this mirrors how the stats were always reported.
		denominator := row.Attended + row.Absented + row.Late
		if denominator > 0 {
			rateSum += float64(row.Attended) / float64(denominator)
		}

		totalPayroll = totalPayroll.Add(row.Salary)

		// First encountered wins ties; rows are ordered by employee id.
		if top == nil || row.ClientCount > top.ClientCount {
			top = &report.TopClientHolder{
				ID:          row.EmployeeID,
				Name:        row.EmployeeName,
				ClientCount: row.ClientCount,
			}
		}
	}

	result.Summary = report.OrganizationSummary{
		Headcount:        len(rows),
		TotalPayrollCost: totalPayroll,
		TopClientHolder:  top,
	}
	if len(rows) > 0 {
		result.Summary.AverageAttendanceRate = rateSum / float64(len(rows))
	}

	return result, nil
}
