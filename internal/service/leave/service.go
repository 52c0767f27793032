package leave

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/scope"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
	}
}

// Submit implements leave.LeaveService. Validation runs before any store
// write; a rejected submission creates nothing.
func (s *LeaveServiceImpl) Submit(ctx context.Context, principal user.Principal, req leave.CreateLeaveRequestRequest) (leave.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:     principal.ID,
		Name:       principal.FullName(),
		Department: principal.Department,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		State:      leave.StatePending,
	})
	if err != nil {
		return leave.DecisionResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.decisionResponse(ctx, principal, created)
}

// ManagerDecide implements leave.LeaveService. A manager may only decide
// requests from their own department, and only while the request is still
// pending; anything else is an illegal transition.
func (s *LeaveServiceImpl) ManagerDecide(ctx context.Context, principal user.Principal, requestID string, req leave.DecideLeaveRequestRequest) (leave.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.DecisionResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if request.Department != principal.Department {
		return leave.DecisionResponse{}, leave.ErrNotDepartmentManager
	}

	action := leave.ActionManagerApprove
	if req.Action == "reject" {
		action = leave.ActionManagerReject
	}

	return s.applyAction(ctx, principal, request, action)
}

// HRDecide implements leave.LeaveService. HR acts only after the manager
// approved; a request rejected at the manager stage is terminal and never
// reaches HR.
func (s *LeaveServiceImpl) HRDecide(ctx context.Context, principal user.Principal, requestID string, req leave.DecideLeaveRequestRequest) (leave.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.DecisionResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	action := leave.ActionHRApprove
	if req.Action == "reject" {
		action = leave.ActionHRReject
	}

	return s.applyAction(ctx, principal, request, action)
}

// ListVisible implements leave.LeaveService. Leave requests carry their
// department, so the manager path filters directly on it.
func (s *LeaveServiceImpl) ListVisible(ctx context.Context, principal user.Principal) ([]leave.LeaveRequestResponse, error) {
	visibility := scope.ForPrincipal(principal)

	var requests []leave.LeaveRequest
	var err error
	switch visibility.Kind {
	case scope.KindSelf:
		requests, err = s.LeaveRequestRepository.ListByUserID(ctx, principal.ID)
	case scope.KindDepartment:
		requests, err = s.LeaveRequestRepository.ListByDepartment(ctx, visibility.Department)
	default:
		requests, err = s.LeaveRequestRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(request))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) applyAction(ctx context.Context, principal user.Principal, request leave.LeaveRequest, action leave.Action) (leave.DecisionResponse, error) {
	next, err := request.State.Apply(action)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.UpdateState(ctx, request.ID, next)
	if err != nil {
		return leave.DecisionResponse{}, fmt.Errorf("failed to update leave request state: %w", err)
	}

	return s.decisionResponse(ctx, principal, updated)
}

// decisionResponse re-fetches the caller's visible request set so every
// write returns a consistent post-write snapshot.
func (s *LeaveServiceImpl) decisionResponse(ctx context.Context, principal user.Principal, request leave.LeaveRequest) (leave.DecisionResponse, error) {
	requests, err := s.ListVisible(ctx, principal)
	if err != nil {
		return leave.DecisionResponse{}, err
	}
	return leave.DecisionResponse{
		Request:  leave.NewLeaveRequestResponse(request),
		Requests: requests,
	}, nil
}
