package employee

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/staffly/hrms-backend-go/internal/config"
	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
	balanceRepo  leave.BalanceRepository
	leaveCfg     config.LeaveConfig
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	balanceRepo leave.BalanceRepository,
	leaveCfg config.LeaveConfig,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		balanceRepo:  balanceRepo,
		leaveCfg:     leaveCfg,
	}
}

// Create registers the employee and seeds the leave ledger with the default
// balances. Sick leave gets an unlimited (null) row.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         employee.Role(req.Role),
		Salary:       decimal.NewFromFloat(req.Salary),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	annual := s.leaveCfg.AnnualDefault
	emergency := s.leaveCfg.EmergencyDefault
	seeds := map[leave.LeaveType]*int{
		leave.TypeAnnual:    &annual,
		leave.TypeEmergency: &emergency,
		leave.TypeSick:      nil,
	}
	for leaveType, remaining := range seeds {
		if err := s.balanceRepo.Upsert(ctx, created.ID, leaveType, remaining); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to seed leave balance: %w", err)
		}
	}

	return toResponse(created), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	salary, _ := emp.Salary.Float64()
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Email:     emp.Email,
		Role:      string(emp.Role),
		Salary:    salary,
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
