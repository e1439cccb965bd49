package response

import (
	"errors"
	"net/http"

	"github.com/staffly/hrms-backend-go/internal/domain/attendance"
	"github.com/staffly/hrms-backend-go/internal/domain/auth"
	"github.com/staffly/hrms-backend-go/internal/domain/client"
	"github.com/staffly/hrms-backend-go/internal/domain/employee"
	"github.com/staffly/hrms-backend-go/internal/domain/leave"
	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
	"github.com/staffly/hrms-backend-go/internal/domain/task"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminOnly):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "You do not have access to this resource")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Schedule slot not found")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadySignedIn):
		Conflict(w, "Already signed in today")
	case errors.Is(err, attendance.ErrNotSignedIn):
		BadRequest(w, "No sign-in record for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
