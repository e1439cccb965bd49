package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	GetByScheduleID(ctx context.Context, scheduleID string) ([]Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error
}
