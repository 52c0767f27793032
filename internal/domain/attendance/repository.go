package attendance

import (
	"context"
)

// AttendanceRepository - interface for the attendance table
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	ListByUserID(ctx context.Context, userID string) ([]Attendance, error)
	FindByUserAndDate(ctx context.Context, userID, date string) (Attendance, error)
	Update(ctx context.Context, record Attendance) (Attendance, error)
}
