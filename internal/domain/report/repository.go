package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// GetMonthlyEmployeeStats returns one row per employee (ordered by
	// employee id) with the month's attendance buckets, task counts over
	// slots whose day falls inside the month, client count and current
	// salary. employeeID narrows the projection to a single employee.
	GetMonthlyEmployeeStats(ctx context.Context, year int, month time.Month, employeeID *string) ([]EmployeeStatsRow, error)
}
