package task

import "time"

type Status string

const (
	StatusPending      Status = "pending"
	StatusCompleted    Status = "completed"
	StatusNotCompleted Status = "not_completed"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusCompleted),
	string(StatusNotCompleted),
}

// Task belongs to exactly one schedule slot and is removed with it.
type Task struct {
	ID          string
	ScheduleID  string
	Title       string
	Description *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
