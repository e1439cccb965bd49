package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidStatus    = errors.New("task status must be 'pending', 'completed' or 'not_completed'")
	ErrScheduleRequired = errors.New("schedule_id is required")
)
