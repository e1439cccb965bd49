package http

import (
	"net/http"
	"time"

	"github.com/staffly/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
	attendanceService "github.com/staffly/hrms-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOff(w http.ResponseWriter, r *http.Request)
	GetMyMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(s *attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: s}
}

func (h *AttendanceHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.SignIn(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Signed in successfully", resp)
}

func (h *AttendanceHandlerImpl) SignOff(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.SignOff(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed off successfully", resp)
}

func (h *AttendanceHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := time.Now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, ok := validator.IsValidMonth(raw)
		if !ok {
			response.BadRequest(w, "month must be in YYYY-MM format", nil)
			return
		}
		month = parsed
	}

	resp, err := h.attendanceService.MyMonth(r.Context(), actor.EmployeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
