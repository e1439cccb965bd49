package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
)

type slotRepositoryImpl struct {
	db *database.DB
}

func NewSlotRepository(db *database.DB) schedule.SlotRepository {
	return &slotRepositoryImpl{db: db}
}

// Upsert implements schedule.SlotRepository. The slot key is
// (shift_type, week_start, day); a conflicting insert reassigns the
// existing slot to the new employee, keeping the slot id and its tasks.
func (r *slotRepositoryImpl) Upsert(ctx context.Context, slot schedule.Slot) (schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.Slot{}, err
	}

	query := `
		INSERT INTO schedules (id, employee_id, shift_type, week_start, day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (shift_type, week_start, day)
		DO UPDATE SET employee_id = EXCLUDED.employee_id, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		id.String(), slot.EmployeeID, slot.ShiftType, slot.WeekStart, slot.Day,
	).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
	if err != nil {
		return schedule.Slot{}, err
	}

	return slot, nil
}

func (r *slotRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_type, week_start, day, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var slot schedule.Slot
	err := q.QueryRow(ctx, query, id).Scan(
		&slot.ID, &slot.EmployeeID, &slot.ShiftType, &slot.WeekStart, &slot.Day,
		&slot.CreatedAt, &slot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Slot{}, schedule.ErrSlotNotFound
		}
		return schedule.Slot{}, err
	}

	return slot, nil
}

func (r *slotRepositoryImpl) GetByWeek(ctx context.Context, weekStart time.Time) ([]schedule.Slot, error) {
	query := `
		SELECT id, employee_id, shift_type, week_start, day, created_at, updated_at
		FROM schedules
		WHERE week_start = $1
		ORDER BY day, shift_type
	`
	return r.querySlots(ctx, query, weekStart)
}

func (r *slotRepositoryImpl) GetByDay(ctx context.Context, day time.Time) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.shift_type, s.week_start, s.day, s.created_at, s.updated_at,
			   e.name AS employee_name
		FROM schedules s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.day = $1
		ORDER BY s.shift_type
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]schedule.Slot, 0)
	for rows.Next() {
		var slot schedule.Slot
		if err := rows.Scan(
			&slot.ID, &slot.EmployeeID, &slot.ShiftType, &slot.WeekStart, &slot.Day,
			&slot.CreatedAt, &slot.UpdatedAt, &slot.EmployeeName,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

func (r *slotRepositoryImpl) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]schedule.Slot, error) {
	query := `
		SELECT id, employee_id, shift_type, week_start, day, created_at, updated_at
		FROM schedules
		WHERE employee_id = $1 AND day = $2
		ORDER BY shift_type
	`
	return r.querySlots(ctx, query, employeeID, day)
}

func (r *slotRepositoryImpl) GetByEmployeeAndWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]schedule.Slot, error) {
	query := `
		SELECT id, employee_id, shift_type, week_start, day, created_at, updated_at
		FROM schedules
		WHERE employee_id = $1 AND week_start = $2
		ORDER BY day, shift_type
	`
	return r.querySlots(ctx, query, employeeID, weekStart)
}

func (r *slotRepositoryImpl) DeleteByWeek(ctx context.Context, weekStart time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Tasks cascade with their slots.
	_, err := q.Exec(ctx, `DELETE FROM schedules WHERE week_start = $1`, weekStart)
	return err
}

func (r *slotRepositoryImpl) querySlots(ctx context.Context, query string, args ...interface{}) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]schedule.Slot, 0)
	for rows.Next() {
		var slot schedule.Slot
		if err := rows.Scan(
			&slot.ID, &slot.EmployeeID, &slot.ShiftType, &slot.WeekStart, &slot.Day,
			&slot.CreatedAt, &slot.UpdatedAt,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

type weekStatusRepositoryImpl struct {
	db *database.DB
}

func NewWeekStatusRepository(db *database.DB) schedule.WeekStatusRepository {
	return &weekStatusRepositoryImpl{db: db}
}

// Get implements schedule.WeekStatusRepository. A week without a status row
// reads as not submitted.
func (r *weekStatusRepositoryImpl) Get(ctx context.Context, weekStart time.Time) (schedule.WeekStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT week_start, submitted, submitted_at
		FROM schedule_weeks
		WHERE week_start = $1
	`

	var status schedule.WeekStatus
	err := q.QueryRow(ctx, query, weekStart).Scan(
		&status.WeekStart, &status.Submitted, &status.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeekStatus{WeekStart: weekStart}, nil
		}
		return schedule.WeekStatus{}, err
	}

	return status, nil
}

func (r *weekStatusRepositoryImpl) MarkSubmitted(ctx context.Context, weekStart time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_weeks (week_start, submitted, submitted_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (week_start)
		DO UPDATE SET submitted = TRUE
	`

	_, err := q.Exec(ctx, query, weekStart)
	return err
}

func (r *weekStatusRepositoryImpl) Delete(ctx context.Context, weekStart time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM schedule_weeks WHERE week_start = $1`, weekStart)
	return err
}
