package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/hrms-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if _, ok := r.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadySignedIn
	}
	r.nextID++
	att.ID = fmt.Sprintf("att-%d", r.nextID)
	r.records[key] = &att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := r.records[recordKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *att, nil
}

func (r *fakeAttendanceRepo) SetSignOff(_ context.Context, employeeID string, date time.Time, signOff time.Time) error {
	att, ok := r.records[recordKey(employeeID, date)]
	if !ok {
		return attendance.ErrNotSignedIn
	}
	att.SignOffTime = &signOff
	return nil
}

func (r *fakeAttendanceRepo) ListByEmployeeAndMonth(_ context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Year() == year && att.Date.Month() == month {
			out = append(out, *att)
		}
	}
	return out, nil
}

func newTestAttendanceService(now time.Time) (*AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("before the cutoff is on time", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 8, 55, 0, 0, time.UTC))

		resp, err := svc.SignIn(ctx, "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "on_time", resp.Status)
	})

	t.Run("exactly at the cutoff is on time", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 9, 15, 0, 0, time.UTC))

		resp, err := svc.SignIn(ctx, "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "on_time", resp.Status)
	})

	t.Run("after the cutoff is late", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 9, 16, 0, 0, time.UTC))

		resp, err := svc.SignIn(ctx, "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "late", resp.Status)
	})

	t.Run("second sign-in on the same day fails", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))

		_, err := svc.SignIn(ctx, "emp-1")
		require.NoError(t, err)

		_, err = svc.SignIn(ctx, "emp-1")
		assert.ErrorIs(t, err, attendance.ErrAlreadySignedIn)
	})
}

func TestSignOff(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps and returns the existing record", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))

		_, err := svc.SignIn(ctx, "emp-1")
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Date(2025, 7, 1, 17, 0, 0, 0, time.UTC) }
		resp, err := svc.SignOff(ctx, "emp-1")
		require.NoError(t, err)
		require.NotNil(t, resp.SignOffTime)
		assert.Equal(t, "17:00:00", *resp.SignOffTime)
		assert.NotNil(t, resp.SignInTime)
	})

	t.Run("fails without a sign-in", func(t *testing.T) {
		svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 17, 0, 0, 0, time.UTC))

		_, err := svc.SignOff(ctx, "emp-1")
		assert.ErrorIs(t, err, attendance.ErrNotSignedIn)
	})
}

func TestMyMonth(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestAttendanceService(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.SignIn(ctx, "emp-1")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC) }
	_, err = svc.SignIn(ctx, "emp-1")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC) }
	_, err = svc.SignIn(ctx, "emp-1")
	require.NoError(t, err)

	july, _ := time.Parse("2006-01", "2025-07")
	records, err := svc.MyMonth(ctx, "emp-1", july)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
