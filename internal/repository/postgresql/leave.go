package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

func (r *balanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, balance, created_at, updated_at
		FROM employee_leaves
		WHERE employee_id = $1
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.Balance, 0)
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveType, &b.Remaining,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *balanceRepositoryImpl) Get(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, balance, created_at, updated_at
		FROM employee_leaves
		WHERE employee_id = $1 AND leave_type = $2
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveType).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveType, &b.Remaining,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}

	return b, nil
}

// DecrementIfPositive implements leave.BalanceRepository. The conditional
// update is the whole race-safety story: a zero balance matches no row and
// the ledger never goes negative.
func (r *balanceRepositoryImpl) DecrementIfPositive(ctx context.Context, employeeID string, leaveType leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_leaves
		SET balance = balance - 1, updated_at = NOW()
		WHERE employee_id = $1 AND leave_type = $2 AND balance > 0
	`

	_, err := q.Exec(ctx, query, employeeID, leaveType)
	return err
}

func (r *balanceRepositoryImpl) Upsert(ctx context.Context, employeeID string, leaveType leave.LeaveType, remaining *int) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employee_leaves (id, employee_id, leave_type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type)
		DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()
	`

	_, err = q.Exec(ctx, query, id.String(), employeeID, leaveType, remaining)
	return err
}

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) leave.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.Request{}, err
	}
	req.ID = id.String()

	query := `
		INSERT INTO requests (id, employee_id, type, start_date, end_date, message, status, is_seen, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NOW(), NOW())
		RETURNING is_seen, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Message, req.Status,
	).Scan(&req.IsSeen, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.type, r.start_date, r.end_date, r.message,
			   r.status, r.is_seen, r.admin_response, r.created_at, r.updated_at,
			   e.name AS employee_name
		FROM requests r
		JOIN employees e ON r.employee_id = e.id
		WHERE r.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Message,
		&req.Status, &req.IsSeen, &req.AdminResponse, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) List(ctx context.Context) ([]leave.Request, error) {
	query := `
		SELECT r.id, r.employee_id, r.type, r.start_date, r.end_date, r.message,
			   r.status, r.is_seen, r.admin_response, r.created_at, r.updated_at,
			   e.name AS employee_name
		FROM requests r
		JOIN employees e ON r.employee_id = e.id
		ORDER BY r.id DESC
	`
	return r.queryRequests(ctx, query)
}

func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	query := `
		SELECT r.id, r.employee_id, r.type, r.start_date, r.end_date, r.message,
			   r.status, r.is_seen, r.admin_response, r.created_at, r.updated_at,
			   e.name AS employee_name
		FROM requests r
		JOIN employees e ON r.employee_id = e.id
		WHERE r.employee_id = $1
		ORDER BY r.id DESC
	`
	return r.queryRequests(ctx, query, employeeID)
}

// UpdateStatusIfPending implements leave.RequestRepository. The WHERE clause
// makes the transition conditional; of two concurrent admins, exactly one
// sees RowsAffected() == 1.
func (r *requestRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id string, status leave.RequestStatus, adminResponse *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $2, admin_response = COALESCE($3, admin_response), updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	commandTag, err := q.Exec(ctx, query, id, status, adminResponse, leave.StatusPending)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *requestRepositoryImpl) MarkSeen(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE requests SET is_seen = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *requestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepositoryImpl) CountApprovedByType(ctx context.Context) (map[leave.LeaveType]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT type, COUNT(*)
		FROM requests
		WHERE status = $1
		GROUP BY type
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[leave.LeaveType]int64)
	for rows.Next() {
		var leaveType leave.LeaveType
		var total int64
		if err := rows.Scan(&leaveType, &total); err != nil {
			return nil, err
		}
		totals[leaveType] = total
	}

	return totals, rows.Err()
}

func (r *requestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.Request, 0)
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Message,
			&req.Status, &req.IsSeen, &req.AdminResponse, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
