package schedule

import (
	"context"
	"time"
)

type SlotRepository interface {
	// Upsert inserts the slot or, when the (shift_type, week_start, day) key
	// is taken, reassigns the existing slot to the new employee.
	Upsert(ctx context.Context, slot Slot) (Slot, error)
	GetByID(ctx context.Context, id string) (Slot, error)
	GetByWeek(ctx context.Context, weekStart time.Time) ([]Slot, error)
	GetByDay(ctx context.Context, day time.Time) ([]Slot, error)
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]Slot, error)
	GetByEmployeeAndWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]Slot, error)
	DeleteByWeek(ctx context.Context, weekStart time.Time) error
}

type WeekStatusRepository interface {
	Get(ctx context.Context, weekStart time.Time) (WeekStatus, error)
	MarkSubmitted(ctx context.Context, weekStart time.Time) error
	Delete(ctx context.Context, weekStart time.Time) error
}
