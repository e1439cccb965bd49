package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffly/hrms-backend-go/internal/domain/auth"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
)

// LeaveService owns the per-employee leave ledger and the request workflow
// on top of it. A request moves Pending -> Approved | Rejected exactly once;
// approval of a balance-backed type consumes one day from the ledger.
type LeaveService struct {
	balanceRepo leave.BalanceRepository
	requestRepo leave.RequestRepository
	txManager   database.TxManager
}

func NewLeaveService(
	balanceRepo leave.BalanceRepository,
	requestRepo leave.RequestRepository,
	txManager database.TxManager,
) *LeaveService {
	return &LeaveService{
		balanceRepo: balanceRepo,
		requestRepo: requestRepo,
		txManager:   txManager,
	}
}

func (s *LeaveService) GetBalances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	balances, err := s.balanceRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.BalanceResponse{
			LeaveType: string(b.LeaveType),
			Balance:   b.Remaining,
		})
	}
	return responses, nil
}

// CanRequest reports whether the employee may open a request of the given
// type. Unlimited types always pass; otherwise a ledger row with at least
// one remaining day is required, and a missing row blocks the request.
func (s *LeaveService) CanRequest(ctx context.Context, employeeID string, leaveType leave.LeaveType) (bool, error) {
	if leaveType.Unlimited() {
		return true, nil
	}

	balance, err := s.balanceRepo.Get(ctx, employeeID, leaveType)
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance.Remaining == nil || *balance.Remaining >= 1, nil
}

func (s *LeaveService) CreateRequest(ctx context.Context, employeeID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	leaveType := leave.LeaveType(req.Type)
	ok, err := s.CanRequest(ctx, employeeID, leaveType)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !ok {
		return leave.RequestResponse{}, leave.ErrInsufficientBalance
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	request := leave.Request{
		EmployeeID: employeeID,
		Type:       leaveType,
		StartDate:  startDate,
		Message:    req.Message,
		Status:     leave.StatusPending,
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		request.EndDate = &endDate
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewRequestResponse(created), nil
}

// Decide transitions a pending request into a terminal state. The transition
// and the ledger decrement run in one transaction, and the transition itself
// is conditional on the request still being pending, so two admins deciding
// the same request concurrently produce exactly one decrement.
func (s *LeaveService) Decide(ctx context.Context, req leave.DecideRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	status := leave.RequestStatus(req.Status)
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		won, err := s.requestRepo.UpdateStatusIfPending(ctx, req.ID, status, req.AdminResponse)
		if err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		if !won {
			return leave.ErrRequestAlreadyProcessed
		}

		if status == leave.StatusApproved && !request.Type.Unlimited() {
			if err := s.balanceRepo.DecrementIfPositive(ctx, request.EmployeeID, request.Type); err != nil {
				return fmt.Errorf("failed to decrement leave balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	slog.Info("leave request decided",
		"request_id", req.ID,
		"employee_id", request.EmployeeID,
		"type", string(request.Type),
		"status", status.String(),
	)

	request.Status = status
	request.AdminResponse = req.AdminResponse
	return leave.NewRequestResponse(request), nil
}

// View returns the request if the actor may see it. When the owner views a
// decided request it is marked seen; repeat views are a no-op.
func (s *LeaveService) View(ctx context.Context, requestID string, actor auth.Actor) (leave.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if !actor.IsAdmin() && actor.EmployeeID != request.EmployeeID {
		return leave.RequestResponse{}, auth.ErrForbidden
	}

	if actor.EmployeeID == request.EmployeeID && request.Status.Terminal() && !request.IsSeen {
		if err := s.requestRepo.MarkSeen(ctx, requestID); err != nil {
			return leave.RequestResponse{}, fmt.Errorf("failed to mark request seen: %w", err)
		}
		request.IsSeen = true
	}

	return leave.NewRequestResponse(request), nil
}

// List is the role-scoped request listing. Admins see every request plus
// per-type approved totals; employees see their own plus their balances.
func (s *LeaveService) List(ctx context.Context, actor auth.Actor) (leave.RequestListResponse, error) {
	var response leave.RequestListResponse

	if actor.IsAdmin() {
		requests, err := s.requestRepo.List(ctx)
		if err != nil {
			return leave.RequestListResponse{}, fmt.Errorf("failed to list requests: %w", err)
		}
		totals, err := s.requestRepo.CountApprovedByType(ctx)
		if err != nil {
			return leave.RequestListResponse{}, fmt.Errorf("failed to count approved requests: %w", err)
		}
		response.Requests = toRequestResponses(requests)
		response.LeaveTotals = make(map[string]int64, len(totals))
		for leaveType, total := range totals {
			response.LeaveTotals[string(leaveType)] = total
		}
		return response, nil
	}

	requests, err := s.requestRepo.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return leave.RequestListResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}
	balances, err := s.GetBalances(ctx, actor.EmployeeID)
	if err != nil {
		return leave.RequestListResponse{}, err
	}
	response.Requests = toRequestResponses(requests)
	response.LeaveBalances = balances
	return response, nil
}

// Delete removes the request outright. An approved request's ledger
// decrement is deliberately not restored.
func (s *LeaveService) Delete(ctx context.Context, requestID string) error {
	return s.requestRepo.Delete(ctx, requestID)
}

// GrantBalance upserts one ledger row. Used by employee onboarding and the
// yearly refresh job.
func (s *LeaveService) GrantBalance(ctx context.Context, employeeID string, leaveType leave.LeaveType, remaining *int) error {
	if err := s.balanceRepo.Upsert(ctx, employeeID, leaveType, remaining); err != nil {
		return fmt.Errorf("failed to grant leave balance: %w", err)
	}
	return nil
}

func toRequestResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewRequestResponse(r))
	}
	return responses
}
