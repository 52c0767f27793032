package attendance

import (
	"context"

	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Day          string `json:"day"`
	ClockInTime  string `json:"clock_in_time,omitempty"`
	ClockOutTime string `json:"clock_out_time,omitempty"`
	ClockIn      bool   `json:"clock_in"`
	ClockOut     bool   `json:"clock_out"`
	Duration     string `json:"duration,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	duration, _ := a.WorkDuration()
	return AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Name:         a.Name,
		Date:         a.Date.Format(DateLayout),
		Day:          a.Day,
		ClockInTime:  a.ClockInTime,
		ClockOutTime: a.ClockOutTime,
		ClockIn:      a.ClockIn,
		ClockOut:     a.ClockOut,
		Duration:     duration,
	}
}

// ClockResponse returns the touched record together with the re-fetched
// visible record set, so the caller always observes a post-write snapshot.
type ClockResponse struct {
	Record  AttendanceResponse   `json:"record"`
	Records []AttendanceResponse `json:"records"`
	Warning string               `json:"warning,omitempty"`
}

type AttendanceService interface {
	ClockIn(ctx context.Context, principal user.Principal) (ClockResponse, error)
	ClockOut(ctx context.Context, principal user.Principal) (ClockResponse, error)
	ListVisible(ctx context.Context, principal user.Principal) ([]AttendanceResponse, error)
}
