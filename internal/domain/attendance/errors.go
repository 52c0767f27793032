package attendance

import "errors"

// Attendance domain errors
var (
	// Day-state guard violations
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")
	ErrMustClockInFirst  = errors.New("you need to clock in first")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
