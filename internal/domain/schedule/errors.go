package schedule

import "errors"

var (
	ErrSlotNotFound      = errors.New("schedule slot not found")
	ErrInvalidShiftType  = errors.New("shift type must be 'morning' or 'evening'")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)
