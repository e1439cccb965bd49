package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffly/hrms-backend-go/internal/config"
	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
)

// LeaveJobs refreshes the leave ledger on a yearly schedule.
type LeaveJobs struct {
	employeeRepo employee.EmployeeRepository
	balanceRepo  leave.BalanceRepository
	leaveCfg     config.LeaveConfig
}

func NewLeaveJobs(
	employeeRepo employee.EmployeeRepository,
	balanceRepo leave.BalanceRepository,
	leaveCfg config.LeaveConfig,
) *LeaveJobs {
	return &LeaveJobs{
		employeeRepo: employeeRepo,
		balanceRepo:  balanceRepo,
		leaveCfg:     leaveCfg,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(j.leaveCfg.RefreshCronSpec, "refresh_leave_balances", j.RefreshBalances)
}

// RefreshBalances resets every employee's Annual and Emergency balances to
// the configured defaults. Sick leave stays unlimited and is left alone.
func (j *LeaveJobs) RefreshBalances(ctx context.Context) error {
	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	annual := j.leaveCfg.AnnualDefault
	emergency := j.leaveCfg.EmergencyDefault
	for _, emp := range employees {
		if err := j.balanceRepo.Upsert(ctx, emp.ID, leave.TypeAnnual, &annual); err != nil {
			return fmt.Errorf("failed to refresh annual balance for %s: %w", emp.ID, err)
		}
		if err := j.balanceRepo.Upsert(ctx, emp.ID, leave.TypeEmergency, &emergency); err != nil {
			return fmt.Errorf("failed to refresh emergency balance for %s: %w", emp.ID, err)
		}
	}

	slog.Info("leave balances refreshed", "employees", len(employees))
	return nil
}
