package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/hrms-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	rows []report.EmployeeStatsRow
}

func (r *fakeReportRepo) GetMonthlyEmployeeStats(_ context.Context, _ int, _ time.Month, employeeID *string) ([]report.EmployeeStatsRow, error) {
	if employeeID == nil {
		return r.rows, nil
	}
	var out []report.EmployeeStatsRow
	for _, row := range r.rows {
		if row.EmployeeID == *employeeID {
			out = append(out, row)
		}
	}
	return out, nil
}

func salary(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestMonthly(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a malformed month", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, nil)

		_, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "June 2025"})
		assert.Error(t, err)
	})

	t.Run("empty organization yields a zero summary", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, nil)

		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06"})
		require.NoError(t, err)

		assert.Empty(t, result.Employees)
		assert.Equal(t, 0, result.Summary.Headcount)
		assert.Zero(t, result.Summary.AverageAttendanceRate)
		assert.True(t, result.Summary.TotalPayrollCost.IsZero())
		assert.Nil(t, result.Summary.TopClientHolder)
	})

	t.Run("aggregates attendance rate, payroll and top client holder", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []report.EmployeeStatsRow{
			{
				EmployeeID:   "emp-1",
				EmployeeName: "Ana",
				Salary:       salary(3000),
				Attended:     8,
				Absented:     2,
				Late:         0,
				OnTime:       8,
				TaskTotal:    4,
				TaskDone:     3,
				ClientCount:  2,
			},
			{
				EmployeeID:   "emp-2",
				EmployeeName: "Ben",
				Salary:       salary(2500),
				Attended:     5,
				Absented:     0,
				Late:         5,
				OnTime:       0,
				TaskTotal:    2,
				TaskDone:     2,
				ClientCount:  5,
			},
		}}
		svc := NewReportService(repo, nil)

		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06"})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Summary.Headcount)
		assert.True(t, result.Summary.TotalPayrollCost.Equal(salary(5500)))

		// emp-1: 8/(8+2+0) = 0.8, emp-2: 5/(5+0+5) = 0.5, mean 0.65
		assert.InDelta(t, 0.65, result.Summary.AverageAttendanceRate, 1e-9)

		require.NotNil(t, result.Summary.TopClientHolder)
		assert.Equal(t, "emp-2", result.Summary.TopClientHolder.ID)
		assert.Equal(t, 5, result.Summary.TopClientHolder.ClientCount)
	})

	t.Run("employee without attendance contributes zero to the rate", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []report.EmployeeStatsRow{
			{EmployeeID: "emp-1", EmployeeName: "Ana", Attended: 10, Absented: 0, Late: 0},
			{EmployeeID: "emp-2", EmployeeName: "Ben"},
		}}
		svc := NewReportService(repo, nil)

		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06"})
		require.NoError(t, err)

		// (1.0 + 0) / 2
		assert.InDelta(t, 0.5, result.Summary.AverageAttendanceRate, 1e-9)
	})

	t.Run("client count ties go to the first row by employee id", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []report.EmployeeStatsRow{
			{EmployeeID: "emp-1", EmployeeName: "Ana", ClientCount: 3},
			{EmployeeID: "emp-2", EmployeeName: "Ben", ClientCount: 3},
		}}
		svc := NewReportService(repo, nil)

		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06"})
		require.NoError(t, err)

		require.NotNil(t, result.Summary.TopClientHolder)
		assert.Equal(t, "emp-1", result.Summary.TopClientHolder.ID)
	})

	t.Run("exempt employees get a non-applicable task block", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []report.EmployeeStatsRow{
			{EmployeeID: "owner-1", EmployeeName: "Olive", TaskTotal: 9, TaskDone: 9},
			{EmployeeID: "emp-1", EmployeeName: "Ana", TaskTotal: 4, TaskDone: 3},
		}}
		svc := NewReportService(repo, []string{"owner-1"})

		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06"})
		require.NoError(t, err)

		require.Len(t, result.Employees, 2)
		assert.False(t, result.Employees[0].Tasks.Applicable)
		assert.Zero(t, result.Employees[0].Tasks.Total)
		assert.True(t, result.Employees[1].Tasks.Applicable)
		assert.Equal(t, 4, result.Employees[1].Tasks.Total)
	})

	t.Run("staff filter narrows to a single employee", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []report.EmployeeStatsRow{
			{EmployeeID: "emp-1", EmployeeName: "Ana"},
			{EmployeeID: "emp-2", EmployeeName: "Ben"},
		}}
		svc := NewReportService(repo, nil)

		staffID := "emp-2"
		result, err := svc.Monthly(ctx, report.MonthlyReportRequest{Month: "2025-06", EmployeeID: &staffID})
		require.NoError(t, err)

		require.Len(t, result.Employees, 1)
		assert.Equal(t, "emp-2", result.Employees[0].ID)
		assert.Equal(t, 1, result.Summary.Headcount)
	})
}
