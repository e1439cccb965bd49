package leave

import "context"

// BalanceRepository - interface for the employee_leaves ledger table
type BalanceRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) ([]Balance, error)
	Get(ctx context.Context, employeeID string, leaveType LeaveType) (Balance, error)
	// DecrementIfPositive atomically takes one day off the row, only when the
	// remaining balance is positive. Zero or missing rows are a no-op.
	DecrementIfPositive(ctx context.Context, employeeID string, leaveType LeaveType) error
	Upsert(ctx context.Context, employeeID string, leaveType LeaveType, remaining *int) error
}

// RequestRepository - interface for the requests table
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	// UpdateStatusIfPending transitions the request out of Pending and reports
	// whether this call won the transition. A request already decided returns
	// false, which keeps the decide path exactly-once under concurrent admins.
	UpdateStatusIfPending(ctx context.Context, id string, status RequestStatus, adminResponse *string) (bool, error)
	MarkSeen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountApprovedByType(ctx context.Context) (map[LeaveType]int64, error)
}
