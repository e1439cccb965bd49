package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffly/hrms-backend-go/internal/domain/task"
	"github.com/staffly/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	"github.com/staffly/hrms-backend-go/internal/pkg/validator"
	taskService "github.com/staffly/hrms-backend-go/internal/service/task"
)

type TaskHandler interface {
	ListForSlot(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetMyDay(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService *taskService.TaskService
}

func NewTaskHandler(s *taskService.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: s}
}

func (h *TaskHandlerImpl) ListForSlot(w http.ResponseWriter, r *http.Request) {
	scheduleID := r.URL.Query().Get("schedule_id")
	if scheduleID == "" {
		response.BadRequest(w, "schedule_id is required", nil)
		return
	}

	resp, err := h.taskService.ListForSlot(r.Context(), scheduleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", resp)
}

func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Task ID must be a valid UUID", nil)
		return
	}

	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := h.taskService.Update(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", resp)
}

func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Task ID must be a valid UUID", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

func (h *TaskHandlerImpl) GetMyDay(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day, ok := validator.IsValidDate(r.URL.Query().Get("day"))
	if !ok {
		response.BadRequest(w, "day must be a date in YYYY-MM-DD format", nil)
		return
	}

	resp, err := h.taskService.ListForEmployeeDay(r.Context(), actor.EmployeeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
