package leave

import (
	"context"

	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate enforces the submission preconditions. Nothing is written to
// the store when this fails.
func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Annual, Sick, Family, Study, Other",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	Action string `json:"action"` // "approve" or "reject"
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be either approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	Department      string `json:"department"`
	LeaveType       string `json:"leave_type"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Reason          string `json:"reason"`
	ManagerApproval string `json:"manager_approval"`
	HRApproval      string `json:"hr_approval"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
}

func NewLeaveRequestResponse(req LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              req.ID,
		UserID:          req.UserID,
		Name:            req.Name,
		Department:      req.Department,
		LeaveType:       string(req.LeaveType),
		StartDate:       req.StartDate.Format(DateLayout),
		EndDate:         req.EndDate.Format(DateLayout),
		Reason:          req.Reason,
		ManagerApproval: string(req.State.ManagerApproval()),
		HRApproval:      string(req.State.HRApproval()),
		Status:          string(req.State.OverallStatus()),
		StatusLabel:     req.State.Label(),
	}
}

// DecisionResponse returns the decided request together with the
// re-fetched visible request set for the acting principal.
type DecisionResponse struct {
	Request  LeaveRequestResponse   `json:"request"`
	Requests []LeaveRequestResponse `json:"requests"`
}

type LeaveService interface {
	Submit(ctx context.Context, principal user.Principal, req CreateLeaveRequestRequest) (DecisionResponse, error)
	ManagerDecide(ctx context.Context, principal user.Principal, requestID string, req DecideLeaveRequestRequest) (DecisionResponse, error)
	HRDecide(ctx context.Context, principal user.Principal, requestID string, req DecideLeaveRequestRequest) (DecisionResponse, error)
	ListVisible(ctx context.Context, principal user.Principal) ([]LeaveRequestResponse, error)
}
