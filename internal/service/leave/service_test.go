package leave

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// fakeLeaveRepo is an in-memory leave.LeaveRequestRepository.
type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = "lr" + strconv.Itoa(f.nextID)
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context) ([]leave.LeaveRequest, error) {
	return append([]leave.LeaveRequest(nil), f.requests...), nil
}

func (f *fakeLeaveRepo) ListByUserID(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByDepartment(_ context.Context, department string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Department == department {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateState(_ context.Context, id string, state leave.State) (leave.LeaveRequest, error) {
	for i, r := range f.requests {
		if r.ID == id {
			f.requests[i].State = state
			return f.requests[i], nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

var (
	requester = user.Principal{ID: "u1", Name: "Ada", Surname: "Lovelace", Role: user.RoleEmployee, Department: "IT"}
	itManager = user.Principal{ID: "u2", Name: "Grace", Surname: "Hopper", Role: user.RoleManager, Department: "IT"}
	hrStaff   = user.Principal{ID: "u3", Name: "Jean", Surname: "Bartik", Role: user.RoleHR, Department: "People"}

	validSubmission = leave.CreateLeaveRequestRequest{
		LeaveType: "Annual",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-05",
		Reason:    "Summer holiday",
	}
	approve = leave.DecideLeaveRequestRequest{Action: "approve"}
	reject  = leave.DecideLeaveRequestRequest{Action: "reject"}
)

func newTestService() (*LeaveServiceImpl, *fakeLeaveRepo) {
	repo := &fakeLeaveRepo{}
	return &LeaveServiceImpl{LeaveRequestRepository: repo}, repo
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	result, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)

	assert.Equal(t, "pending", result.Request.ManagerApproval)
	assert.Equal(t, "pending", result.Request.HRApproval)
	assert.Equal(t, "pending", result.Request.Status)
	assert.Equal(t, "Pending", result.Request.StatusLabel)
	assert.Equal(t, "Ada Lovelace", result.Request.Name)
	assert.Equal(t, "IT", result.Request.Department)

	require.Len(t, repo.requests, 1)
	assert.Equal(t, leave.StatePending, repo.requests[0].State)
	require.Len(t, result.Requests, 1)
}

func TestSubmit_ValidationFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	bad := validSubmission
	bad.EndDate = "2024-06-30"

	_, err := svc.Submit(ctx, requester, bad)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
	assert.Empty(t, repo.requests, "failed validation must not reach the store")
}

func TestApprovalFlow_ManagerThenHRGrants(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)
	id := submitted.Request.ID

	afterManager, err := svc.ManagerDecide(ctx, itManager, id, approve)
	require.NoError(t, err)
	assert.Equal(t, "approved", afterManager.Request.ManagerApproval)
	assert.Equal(t, "pending", afterManager.Request.HRApproval)
	assert.Equal(t, "pending", afterManager.Request.Status)
	assert.Equal(t, "Manager Approved (awaiting HR)", afterManager.Request.StatusLabel)

	afterHR, err := svc.HRDecide(ctx, hrStaff, id, approve)
	require.NoError(t, err)
	assert.Equal(t, "approved", afterHR.Request.ManagerApproval)
	assert.Equal(t, "approved", afterHR.Request.HRApproval)
	assert.Equal(t, "granted", afterHR.Request.Status)
	assert.Equal(t, "Granted", afterHR.Request.StatusLabel)

	assert.Equal(t, leave.StateGranted, repo.requests[0].State)
}

func TestManagerDecide_OtherDepartmentForbidden(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)

	financeManager := user.Principal{ID: "u9", Role: user.RoleManager, Department: "Finance"}
	_, err = svc.ManagerDecide(ctx, financeManager, submitted.Request.ID, approve)

	assert.ErrorIs(t, err, leave.ErrNotDepartmentManager)
	assert.Equal(t, leave.StatePending, repo.requests[0].State)
}

func TestHRDecide_BeforeManagerApprovalFails(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)

	_, err = svc.HRDecide(ctx, hrStaff, submitted.Request.ID, approve)

	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
	assert.Equal(t, leave.StatePending, repo.requests[0].State)
}

func TestManagerReject_IsTerminal(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)
	id := submitted.Request.ID

	rejected, err := svc.ManagerDecide(ctx, itManager, id, reject)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Request.ManagerApproval)
	assert.Equal(t, "pending", rejected.Request.HRApproval)
	assert.Equal(t, "rejected", rejected.Request.Status)
	assert.Equal(t, "Rejected", rejected.Request.StatusLabel)

	// a stale HR decision against the rejected request must bounce
	_, err = svc.HRDecide(ctx, hrStaff, id, approve)
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
	assert.Equal(t, leave.StateManagerRejected, repo.requests[0].State)
}

func TestHRReject_AfterManagerApproval(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)
	id := submitted.Request.ID

	_, err = svc.ManagerDecide(ctx, itManager, id, approve)
	require.NoError(t, err)

	result, err := svc.HRDecide(ctx, hrStaff, id, reject)
	require.NoError(t, err)
	assert.Equal(t, "approved", result.Request.ManagerApproval)
	assert.Equal(t, "rejected", result.Request.HRApproval)
	assert.Equal(t, "rejected", result.Request.Status)

	// terminal: HR cannot re-decide
	_, err = svc.HRDecide(ctx, hrStaff, id, reject)
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
}

func TestDecide_InvalidActionRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)

	_, err = svc.ManagerDecide(ctx, itManager, submitted.Request.ID, leave.DecideLeaveRequestRequest{Action: "maybe"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, leave.StatePending, repo.requests[0].State)
}

func TestDecide_UnknownRequestNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.ManagerDecide(ctx, itManager, "missing", approve)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListVisible_RoleScoping(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	seed := []leave.LeaveRequest{
		{UserID: "u1", Department: "IT", State: leave.StatePending},
		{UserID: "u2", Department: "IT", State: leave.StateGranted},
		{UserID: "u5", Department: "Finance", State: leave.StatePending},
	}
	for _, r := range seed {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	own, err := svc.ListVisible(ctx, requester)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "u1", own[0].UserID)

	dept, err := svc.ListVisible(ctx, itManager)
	require.NoError(t, err)
	assert.Len(t, dept, 2)

	all, err := svc.ListVisible(ctx, hrStaff)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDecisionResponse_ContainsRefreshedSet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	submitted, err := svc.Submit(ctx, requester, validSubmission)
	require.NoError(t, err)

	result, err := svc.ManagerDecide(ctx, itManager, submitted.Request.ID, approve)
	require.NoError(t, err)

	require.Len(t, result.Requests, 1)
	assert.Equal(t, result.Request.ID, result.Requests[0].ID)
	assert.Equal(t, "approved", result.Requests[0].ManagerApproval)
}
