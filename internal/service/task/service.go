package task

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly/hrms-backend-go/internal/domain/auth"
	"github.com/staffly/hrms-backend-go/internal/domain/schedule"
	"github.com/staffly/hrms-backend-go/internal/domain/task"
)

// TaskService manages the per-slot task lists of the shift board.
type TaskService struct {
	taskRepo task.TaskRepository
	slotRepo schedule.SlotRepository
}

func NewTaskService(taskRepo task.TaskRepository, slotRepo schedule.SlotRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		slotRepo: slotRepo,
	}
}

func (s *TaskService) ListForSlot(ctx context.Context, scheduleID string) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.GetByScheduleID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for schedule: %w", err)
	}
	return toResponses(tasks), nil
}

func (s *TaskService) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.slotRepo.GetByID(ctx, req.ScheduleID); err != nil {
		return task.TaskResponse{}, err
	}

	status := task.StatusPending
	if req.Status != nil {
		status = task.Status(*req.Status)
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		ScheduleID:  req.ScheduleID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return toResponse(created), nil
}

// Update applies a partial update. Admins may change any field of any task;
// employees may only change the status of tasks on their own slots.
func (s *TaskService) Update(ctx context.Context, actor auth.Actor, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if !actor.IsAdmin() {
		slot, err := s.slotRepo.GetByID(ctx, existing.ScheduleID)
		if err != nil {
			return task.TaskResponse{}, err
		}
		if slot.EmployeeID != actor.EmployeeID {
			return task.TaskResponse{}, auth.ErrForbidden
		}
		if req.Title != nil || req.Description != nil {
			return task.TaskResponse{}, auth.ErrForbidden
		}
	}

	updated, err := s.taskRepo.Update(ctx, req)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

// ListForEmployeeDay buckets the employee's tasks for one day by the shift
// type of the owning slot. A day without slots yields two empty buckets.
func (s *TaskService) ListForEmployeeDay(ctx context.Context, employeeID string, day time.Time) (task.DayTasks, error) {
	buckets := task.DayTasks{
		Morning: make([]task.TaskResponse, 0),
		Evening: make([]task.TaskResponse, 0),
	}

	slots, err := s.slotRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return task.DayTasks{}, fmt.Errorf("failed to get employee day slots: %w", err)
	}

	for _, slot := range slots {
		tasks, err := s.taskRepo.GetByScheduleID(ctx, slot.ID)
		if err != nil {
			return task.DayTasks{}, fmt.Errorf("failed to list tasks for slot: %w", err)
		}
		if slot.ShiftType == schedule.ShiftMorning {
			buckets.Morning = append(buckets.Morning, toResponses(tasks)...)
		} else {
			buckets.Evening = append(buckets.Evening, toResponses(tasks)...)
		}
	}

	return buckets, nil
}

func toResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:          t.ID,
		ScheduleID:  t.ScheduleID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toResponse(t))
	}
	return responses
}
