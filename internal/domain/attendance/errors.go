package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadySignedIn    = errors.New("already signed in for this date")
	ErrNotSignedIn        = errors.New("no sign-in found for this date")
)
