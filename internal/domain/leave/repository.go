package leave

import (
	"context"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListByDepartment(ctx context.Context, department string) ([]LeaveRequest, error)
	UpdateState(ctx context.Context, id string, state State) (LeaveRequest, error)
}
