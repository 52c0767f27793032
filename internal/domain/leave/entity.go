package leave

import (
	"time"
)

// DateLayout is the wire format for leave dates.
const DateLayout = "2006-01-02"

// LeaveType enumerates the accepted leave categories.
type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "Annual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeFamily LeaveType = "Family"
	LeaveTypeStudy  LeaveType = "Study"
	LeaveTypeOther  LeaveType = "Other"
)

// LeaveTypes lists every accepted leave type value.
var LeaveTypes = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypeFamily),
	string(LeaveTypeStudy),
	string(LeaveTypeOther),
}

// LeaveRequest entity. State is the workflow position; the approval triple
// stored alongside it is derived via the State projections.
type LeaveRequest struct {
	ID         string
	UserID     string
	Name       string
	Department string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	State      State
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
