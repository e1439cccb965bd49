package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/hrms-backend-go/internal/config"
	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	r.nextID++
	emp.ID = fmt.Sprintf("emp-%d", r.nextID)
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

type fakeBalanceRepo struct {
	balances map[string]*int
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*int)}
}

func (r *fakeBalanceRepo) GetByEmployee(_ context.Context, employeeID string) ([]leave.Balance, error) {
	return nil, nil
}

func (r *fakeBalanceRepo) Get(_ context.Context, employeeID string, leaveType leave.LeaveType) (leave.Balance, error) {
	remaining, ok := r.balances[employeeID+"|"+string(leaveType)]
	if !ok {
		return leave.Balance{}, leave.ErrBalanceNotFound
	}
	return leave.Balance{EmployeeID: employeeID, LeaveType: leaveType, Remaining: remaining}, nil
}

func (r *fakeBalanceRepo) DecrementIfPositive(_ context.Context, employeeID string, leaveType leave.LeaveType) error {
	return nil
}

func (r *fakeBalanceRepo) Upsert(_ context.Context, employeeID string, leaveType leave.LeaveType, remaining *int) error {
	r.balances[employeeID+"|"+string(leaveType)] = remaining
	return nil
}

var testLeaveCfg = config.LeaveConfig{AnnualDefault: 21, EmergencyDefault: 7}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	validRequest := employee.CreateEmployeeRequest{
		Name:     "Ana Silva",
		Email:    "ana@staffly.dev",
		Password: "supersecret",
		Role:     "employee",
		Salary:   2500,
	}

	t.Run("creates the employee and seeds the leave ledger", func(t *testing.T) {
		balances := newFakeBalanceRepo()
		svc := NewEmployeeService(newFakeEmployeeRepo(), balances, testLeaveCfg)

		resp, err := svc.Create(ctx, validRequest)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "ana@staffly.dev", resp.Email)

		annual, err := balances.Get(ctx, resp.ID, leave.TypeAnnual)
		require.NoError(t, err)
		require.NotNil(t, annual.Remaining)
		assert.Equal(t, 21, *annual.Remaining)

		emergency, err := balances.Get(ctx, resp.ID, leave.TypeEmergency)
		require.NoError(t, err)
		require.NotNil(t, emergency.Remaining)
		assert.Equal(t, 7, *emergency.Remaining)

		sick, err := balances.Get(ctx, resp.ID, leave.TypeSick)
		require.NoError(t, err)
		assert.Nil(t, sick.Remaining)
	})

	t.Run("does not store the plain password", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := NewEmployeeService(repo, newFakeBalanceRepo(), testLeaveCfg)

		resp, err := svc.Create(ctx, validRequest)
		require.NoError(t, err)

		stored, err := repo.GetByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "supersecret", stored.PasswordHash)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepo(), newFakeBalanceRepo(), testLeaveCfg)

		_, err := svc.Create(ctx, validRequest)
		require.NoError(t, err)

		_, err = svc.Create(ctx, validRequest)
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepo(), newFakeBalanceRepo(), testLeaveCfg)

		req := validRequest
		req.Password = "short"
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepo(), newFakeBalanceRepo(), testLeaveCfg)

		req := validRequest
		req.Role = "superuser"
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})
}
