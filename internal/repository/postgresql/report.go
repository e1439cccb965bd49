package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly/hrms-backend-go/internal/domain/report"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetMonthlyEmployeeStats implements report.ReportRepository. Attendance rows
// bucket by status: attended is everything except missed, with late and
// on_time as its refinements, so no date is counted twice.
func (r *reportRepositoryImpl) GetMonthlyEmployeeStats(ctx context.Context, year int, month time.Month, employeeID *string) ([]report.EmployeeStatsRow, error) {
	q := GetQuerier(ctx, r.db)

	periodStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	query := `
		WITH attendance_counts AS (
			SELECT employee_id,
				   COUNT(*) FILTER (WHERE status != 'missed') AS attended,
				   COUNT(*) FILTER (WHERE status = 'missed') AS absented,
				   COUNT(*) FILTER (WHERE status = 'late') AS late,
				   COUNT(*) FILTER (WHERE status = 'on_time') AS on_time
			FROM attendances
			WHERE date >= $1 AND date < $2
			GROUP BY employee_id
		),
		task_counts AS (
			SELECT s.employee_id,
				   COUNT(t.id) AS task_total,
				   COUNT(t.id) FILTER (WHERE t.status = 'completed') AS task_done
			FROM schedules s
			JOIN tasks t ON t.schedule_id = s.id
			WHERE s.day >= $1 AND s.day < $2
			GROUP BY s.employee_id
		),
		client_counts AS (
			SELECT employee_id, COUNT(*) AS client_count
			FROM clients
			GROUP BY employee_id
		)
		SELECT e.id, e.name, e.salary,
			   COALESCE(ac.attended, 0), COALESCE(ac.absented, 0),
			   COALESCE(ac.late, 0), COALESCE(ac.on_time, 0),
			   COALESCE(tc.task_total, 0), COALESCE(tc.task_done, 0),
			   COALESCE(cc.client_count, 0)
		FROM employees e
		LEFT JOIN attendance_counts ac ON ac.employee_id = e.id
		LEFT JOIN task_counts tc ON tc.employee_id = e.id
		LEFT JOIN client_counts cc ON cc.employee_id = e.id
		%s
		ORDER BY e.id
	`

	args := []interface{}{periodStart, periodEnd}
	filter := ""
	if employeeID != nil {
		args = append(args, *employeeID)
		filter = "WHERE e.id = $3"
	}

	rows, err := q.Query(ctx, fmt.Sprintf(query, filter), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly employee stats: %w", err)
	}
	defer rows.Close()

	stats := make([]report.EmployeeStatsRow, 0)
	for rows.Next() {
		var row report.EmployeeStatsRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Salary,
			&row.Attended, &row.Absented, &row.Late, &row.OnTime,
			&row.TaskTotal, &row.TaskDone, &row.ClientCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly employee stats: %w", err)
		}
		stats = append(stats, row)
	}

	return stats, rows.Err()
}
