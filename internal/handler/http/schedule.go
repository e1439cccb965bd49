package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
	"github.com/staffly/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
	scheduleService "github.com/staffly/hrms-backend-go/internal/service/schedule"
)

type ScheduleHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	ResetWeek(w http.ResponseWriter, r *http.Request)
	SubmitWeek(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetMyWeek(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService *scheduleService.ScheduleService
}

func NewScheduleHandler(s *scheduleService.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: s}
}

func (h *ScheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assigned successfully", resp)
}

func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekStart, ok := validator.IsValidDate(r.URL.Query().Get("week_start"))
	if !ok {
		response.BadRequest(w, "week_start must be a date in YYYY-MM-DD format", nil)
		return
	}

	resp, err := h.scheduleService.GetWeek(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ScheduleHandlerImpl) ResetWeek(w http.ResponseWriter, r *http.Request) {
	var req schedule.WeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	weekStart, _ := validator.IsValidDate(req.WeekStart)
	if err := h.scheduleService.ResetWeek(r.Context(), weekStart); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week schedule reset successfully", nil)
}

func (h *ScheduleHandlerImpl) SubmitWeek(w http.ResponseWriter, r *http.Request) {
	var req schedule.WeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	weekStart, _ := validator.IsValidDate(req.WeekStart)
	if err := h.scheduleService.SubmitWeek(r.Context(), weekStart); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week schedule submitted successfully", nil)
}

func (h *ScheduleHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := validator.IsValidDate(r.URL.Query().Get("day"))
	if !ok {
		response.BadRequest(w, "day must be a date in YYYY-MM-DD format", nil)
		return
	}

	resp, err := h.scheduleService.GetDay(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ScheduleHandlerImpl) GetMyWeek(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	weekStart, ok := validator.IsValidDate(r.URL.Query().Get("week_start"))
	if !ok {
		response.BadRequest(w, "week_start must be a date in YYYY-MM-DD format", nil)
		return
	}

	resp, err := h.scheduleService.GetMyWeek(r.Context(), actor.EmployeeID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
