package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
)

type fakeSlotRepo struct {
	slots  map[string]schedule.Slot
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]schedule.Slot)}
}

func slotKey(shift schedule.ShiftType, weekStart, day time.Time) string {
	return fmt.Sprintf("%s|%s|%s", shift, weekStart.Format("2006-01-02"), day.Format("2006-01-02"))
}

func (r *fakeSlotRepo) Upsert(_ context.Context, slot schedule.Slot) (schedule.Slot, error) {
	key := slotKey(slot.ShiftType, slot.WeekStart, slot.Day)
	if existing, ok := r.slots[key]; ok {
		existing.EmployeeID = slot.EmployeeID
		r.slots[key] = existing
		return existing, nil
	}
	r.nextID++
	slot.ID = fmt.Sprintf("slot-%d", r.nextID)
	r.slots[key] = slot
	return slot, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (schedule.Slot, error) {
	for _, slot := range r.slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return schedule.Slot{}, schedule.ErrSlotNotFound
}

func (r *fakeSlotRepo) GetByWeek(_ context.Context, weekStart time.Time) ([]schedule.Slot, error) {
	var out []schedule.Slot
	for _, slot := range r.slots {
		if slot.WeekStart.Equal(weekStart) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByDay(_ context.Context, day time.Time) ([]schedule.Slot, error) {
	var out []schedule.Slot
	for _, slot := range r.slots {
		if slot.Day.Equal(day) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) ([]schedule.Slot, error) {
	var out []schedule.Slot
	for _, slot := range r.slots {
		if slot.EmployeeID == employeeID && slot.Day.Equal(day) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByEmployeeAndWeek(_ context.Context, employeeID string, weekStart time.Time) ([]schedule.Slot, error) {
	var out []schedule.Slot
	for _, slot := range r.slots {
		if slot.EmployeeID == employeeID && slot.WeekStart.Equal(weekStart) {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) DeleteByWeek(_ context.Context, weekStart time.Time) error {
	for key, slot := range r.slots {
		if slot.WeekStart.Equal(weekStart) {
			delete(r.slots, key)
		}
	}
	return nil
}

type fakeWeekStatusRepo struct {
	submitted map[string]bool
}

func newFakeWeekStatusRepo() *fakeWeekStatusRepo {
	return &fakeWeekStatusRepo{submitted: make(map[string]bool)}
}

func (r *fakeWeekStatusRepo) Get(_ context.Context, weekStart time.Time) (schedule.WeekStatus, error) {
	return schedule.WeekStatus{
		WeekStart: weekStart,
		Submitted: r.submitted[weekStart.Format("2006-01-02")],
	}, nil
}

func (r *fakeWeekStatusRepo) MarkSubmitted(_ context.Context, weekStart time.Time) error {
	r.submitted[weekStart.Format("2006-01-02")] = true
	return nil
}

func (r *fakeWeekStatusRepo) Delete(_ context.Context, weekStart time.Time) error {
	delete(r.submitted, weekStart.Format("2006-01-02"))
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{ID: id, Name: "Employee " + id}
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func newTestScheduleService(employeeIDs ...string) (*ScheduleService, *fakeSlotRepo, *fakeWeekStatusRepo) {
	slotRepo := newFakeSlotRepo()
	weekStatusRepo := newFakeWeekStatusRepo()
	svc := NewScheduleService(slotRepo, weekStatusRepo, newFakeEmployeeRepo(employeeIDs...))
	return svc, slotRepo, weekStatusRepo
}

const testWeek = "2025-06-30"

func TestAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a slot for a valid request", func(t *testing.T) {
		svc, _, _ := newTestScheduleService("emp-1")

		resp, err := svc.Assign(ctx, schedule.AssignSlotRequest{
			EmployeeID: "emp-1",
			ShiftType:  "morning",
			WeekStart:  testWeek,
			Day:        "2025-07-01",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "emp-1", resp.EmployeeID)
		assert.Equal(t, "morning", resp.ShiftType)
		assert.Equal(t, "2025-07-01", resp.Day)
	})

	t.Run("reassigning an occupied slot replaces the occupant and keeps the slot id", func(t *testing.T) {
		svc, _, _ := newTestScheduleService("emp-1", "emp-2")

		req := schedule.AssignSlotRequest{
			EmployeeID: "emp-1",
			ShiftType:  "evening",
			WeekStart:  testWeek,
			Day:        "2025-07-02",
		}
		first, err := svc.Assign(ctx, req)
		require.NoError(t, err)

		req.EmployeeID = "emp-2"
		second, err := svc.Assign(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "emp-2", second.EmployeeID)
	})

	t.Run("rejects an unknown employee", func(t *testing.T) {
		svc, _, _ := newTestScheduleService("emp-1")

		_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
			EmployeeID: "ghost",
			ShiftType:  "morning",
			WeekStart:  testWeek,
			Day:        "2025-07-01",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("rejects an invalid shift type", func(t *testing.T) {
		svc, _, _ := newTestScheduleService("emp-1")

		_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
			EmployeeID: "emp-1",
			ShiftType:  "night",
			WeekStart:  testWeek,
			Day:        "2025-07-01",
		})
		assert.Error(t, err)
	})
}

func TestGetWeek(t *testing.T) {
	ctx := context.Background()
	weekStart, _ := time.Parse("2006-01-02", testWeek)

	t.Run("empty week has seven days of null pairs and is not submitted", func(t *testing.T) {
		svc, _, _ := newTestScheduleService()

		view, err := svc.GetWeek(ctx, weekStart)
		require.NoError(t, err)

		assert.Len(t, view.Assignments, 7)
		assert.False(t, view.Submitted)
		for day, pair := range view.Assignments {
			assert.Nil(t, pair[0], "morning of %s", day)
			assert.Nil(t, pair[1], "evening of %s", day)
		}
		assert.Contains(t, view.Assignments, "2025-06-30")
		assert.Contains(t, view.Assignments, "2025-07-06")
	})

	t.Run("assignments land in the right shift position", func(t *testing.T) {
		svc, _, _ := newTestScheduleService("emp-1", "emp-2")

		_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
			EmployeeID: "emp-1", ShiftType: "morning", WeekStart: testWeek, Day: "2025-07-01",
		})
		require.NoError(t, err)
		_, err = svc.Assign(ctx, schedule.AssignSlotRequest{
			EmployeeID: "emp-2", ShiftType: "evening", WeekStart: testWeek, Day: "2025-07-01",
		})
		require.NoError(t, err)

		view, err := svc.GetWeek(ctx, weekStart)
		require.NoError(t, err)

		pair := view.Assignments["2025-07-01"]
		require.NotNil(t, pair[0])
		require.NotNil(t, pair[1])
		assert.Equal(t, "emp-1", *pair[0])
		assert.Equal(t, "emp-2", *pair[1])
	})
}

func TestSubmitWeek(t *testing.T) {
	ctx := context.Background()
	weekStart, _ := time.Parse("2006-01-02", testWeek)

	svc, _, _ := newTestScheduleService()

	require.NoError(t, svc.SubmitWeek(ctx, weekStart))

	view, err := svc.GetWeek(ctx, weekStart)
	require.NoError(t, err)
	assert.True(t, view.Submitted)

	// Submitting again is a no-op.
	require.NoError(t, svc.SubmitWeek(ctx, weekStart))
	view, err = svc.GetWeek(ctx, weekStart)
	require.NoError(t, err)
	assert.True(t, view.Submitted)
}

func TestResetWeek(t *testing.T) {
	ctx := context.Background()
	weekStart, _ := time.Parse("2006-01-02", testWeek)

	svc, _, _ := newTestScheduleService("emp-1")

	_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
		EmployeeID: "emp-1", ShiftType: "morning", WeekStart: testWeek, Day: "2025-07-03",
	})
	require.NoError(t, err)
	require.NoError(t, svc.SubmitWeek(ctx, weekStart))

	require.NoError(t, svc.ResetWeek(ctx, weekStart))

	view, err := svc.GetWeek(ctx, weekStart)
	require.NoError(t, err)
	assert.False(t, view.Submitted)
	for day, pair := range view.Assignments {
		assert.Nil(t, pair[0], "morning of %s", day)
		assert.Nil(t, pair[1], "evening of %s", day)
	}
}

func TestGetDay(t *testing.T) {
	ctx := context.Background()
	day, _ := time.Parse("2006-01-02", "2025-07-01")

	svc, _, _ := newTestScheduleService("emp-1")

	_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
		EmployeeID: "emp-1", ShiftType: "morning", WeekStart: testWeek, Day: "2025-07-01",
	})
	require.NoError(t, err)

	view, err := svc.GetDay(ctx, day)
	require.NoError(t, err)

	require.NotNil(t, view.Morning)
	assert.Equal(t, "emp-1", view.Morning.ID)
	require.NotNil(t, view.MorningScheduleID)
	assert.Nil(t, view.Evening)
	assert.Nil(t, view.EveningScheduleID)
}

func TestGetMyWeek(t *testing.T) {
	ctx := context.Background()
	weekStart, _ := time.Parse("2006-01-02", testWeek)

	svc, _, _ := newTestScheduleService("emp-1", "emp-2")

	_, err := svc.Assign(ctx, schedule.AssignSlotRequest{
		EmployeeID: "emp-1", ShiftType: "morning", WeekStart: testWeek, Day: "2025-06-30",
	})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, schedule.AssignSlotRequest{
		EmployeeID: "emp-2", ShiftType: "evening", WeekStart: testWeek, Day: "2025-06-30",
	})
	require.NoError(t, err)

	view, err := svc.GetMyWeek(ctx, "emp-1", weekStart)
	require.NoError(t, err)

	assert.Len(t, view.Days, 7)

	monday := view.Days["2025-06-30"]
	require.NotNil(t, monday.Morning)
	assert.Equal(t, "morning", monday.Morning.Name)
	assert.Equal(t, "06:00", monday.Morning.StartTime)
	assert.Equal(t, "15:00", monday.Morning.EndTime)
	// The evening shift belongs to someone else.
	assert.Nil(t, monday.Evening)
}
