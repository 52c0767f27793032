package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrIllegalTransition    = errors.New("leave request does not allow this action")
	ErrInconsistentState    = errors.New("leave request approval state is inconsistent")
	ErrNotDepartmentManager = errors.New("leave request belongs to another department")
)
