package leave

import (
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Message   string  `json:"message"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: Annual Leave, Emergency Leave, Sick Leave",
		})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a date in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		end, okEnd := validator.IsValidDate(*r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a date in YYYY-MM-DD format",
			})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}
	if len(r.Message) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequestRequest struct {
	ID            string  `json:"-"`
	Status        int     `json:"status"`
	AdminResponse *string `json:"admin_response,omitempty"`
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	status := RequestStatus(r.Status)
	if !status.Valid() || !status.Terminal() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 1 (Approved) or 2 (Rejected)",
		})
	}
	if r.AdminResponse != nil && len(*r.AdminResponse) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_response",
			Message: "admin_response must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BalanceResponse struct {
	LeaveType string `json:"leave_type"`
	// Balance is null for unlimited types (Sick Leave).
	Balance *int `json:"balance"`
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	Message       string  `json:"message,omitempty"`
	Status        int     `json:"status"`
	StatusLabel   string  `json:"status_label"`
	IsSeen        bool    `json:"is_seen"`
	AdminResponse *string `json:"admin_response,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// RequestListResponse is the role-scoped request listing. Admins get the
// per-type approved totals; employees get their own ledger balances.
type RequestListResponse struct {
	Requests      []RequestResponse `json:"requests"`
	LeaveTotals   map[string]int64  `json:"leave_totals,omitempty"`
	LeaveBalances []BalanceResponse `json:"leave_balances,omitempty"`
}

func NewRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Type:          string(r.Type),
		StartDate:     r.StartDate.Format("2006-01-02"),
		Message:       r.Message,
		Status:        int(r.Status),
		StatusLabel:   r.Status.String(),
		IsSeen:        r.IsSeen,
		AdminResponse: r.AdminResponse,
		CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.EndDate != nil {
		end := r.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
