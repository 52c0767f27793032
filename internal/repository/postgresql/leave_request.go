package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, user_id, name, department, leave_type, start_date, end_date, reason, manager_approval, hr_approval, status, created_at, updated_at`

// scanLeaveRequest reads a row and folds the stored approval triple back
// into the state enum. A triple no legal transition sequence can produce
// surfaces as leave.ErrInconsistentState instead of being silently mapped.
func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var managerApproval, hrApproval leave.Decision
	var status leave.Status
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.Name,
		&req.Department,
		&req.LeaveType,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&managerApproval,
		&hrApproval,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.State, err = leave.StateOf(managerApproval, hrApproval, status)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, name, department, leave_type, start_date, end_date, reason, manager_approval, hr_approval, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + leaveRequestColumns

	id := uuid.Must(uuid.NewV7()).String()
	return scanLeaveRequest(q.QueryRow(ctx, query,
		id,
		request.UserID,
		request.Name,
		request.Department,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.State.ManagerApproval(),
		request.State.HRApproval(),
		request.State.OverallStatus(),
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.queryMany(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY created_at DESC`)
}

// ListByUserID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return r.queryMany(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListByDepartment implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]leave.LeaveRequest, error) {
	return r.queryMany(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE department = $1 ORDER BY created_at DESC`, department)
}

// UpdateState implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateState(ctx context.Context, id string, state leave.State) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET manager_approval = $1, hr_approval = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + leaveRequestColumns

	req, err := scanLeaveRequest(q.QueryRow(ctx, query,
		state.ManagerApproval(),
		state.HRApproval(),
		state.OverallStatus(),
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}
