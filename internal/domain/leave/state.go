package leave

// Decision is one approver's verdict on a request.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Status is the overall outcome of a request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusGranted  Status = "granted"
	StatusRejected Status = "rejected"
)

// State is the explicit workflow state of a leave request. The stored
// (manager_approval, hr_approval, status) triple is a projection of this
// enum, never the other way around: transitions happen on the State and
// the triple is derived for persistence and display.
type State string

const (
	// StatePending - submitted, no decision yet
	StatePending State = "pending"
	// StateManagerApproved - manager approved, awaiting HR
	StateManagerApproved State = "manager_approved"
	// StateManagerRejected - rejected at the manager stage, terminal
	StateManagerRejected State = "manager_rejected"
	// StateGranted - HR approved after the manager, terminal
	StateGranted State = "granted"
	// StateHRRejected - HR rejected after manager approval, terminal
	StateHRRejected State = "hr_rejected"
)

// Action is a decision event applied to a request's state.
type Action string

const (
	ActionManagerApprove Action = "manager_approve"
	ActionManagerReject  Action = "manager_reject"
	ActionHRApprove      Action = "hr_approve"
	ActionHRReject       Action = "hr_reject"
)

// Apply returns the state reached by taking the action, or
// ErrIllegalTransition when the workflow guards forbid it. Manager actions
// are legal only while no decision has been made; HR actions are legal
// only after the manager approved and before HR decided. Terminal states
// accept nothing.
func (s State) Apply(action Action) (State, error) {
	switch action {
	case ActionManagerApprove:
		if s != StatePending {
			return s, ErrIllegalTransition
		}
		return StateManagerApproved, nil
	case ActionManagerReject:
		if s != StatePending {
			return s, ErrIllegalTransition
		}
		return StateManagerRejected, nil
	case ActionHRApprove:
		if s != StateManagerApproved {
			return s, ErrIllegalTransition
		}
		return StateGranted, nil
	case ActionHRReject:
		if s != StateManagerApproved {
			return s, ErrIllegalTransition
		}
		return StateHRRejected, nil
	}
	return s, ErrIllegalTransition
}

// Terminal reports whether the state permits no further transitions.
func (s State) Terminal() bool {
	switch s {
	case StateManagerRejected, StateGranted, StateHRRejected:
		return true
	}
	return false
}

// ManagerApproval projects the manager stage of the stored triple.
func (s State) ManagerApproval() Decision {
	switch s {
	case StateManagerApproved, StateGranted, StateHRRejected:
		return DecisionApproved
	case StateManagerRejected:
		return DecisionRejected
	}
	return DecisionPending
}

// HRApproval projects the HR stage of the stored triple. A manager
// rejection leaves the HR stage untouched; HR never acts on it.
func (s State) HRApproval() Decision {
	switch s {
	case StateGranted:
		return DecisionApproved
	case StateHRRejected:
		return DecisionRejected
	}
	return DecisionPending
}

// OverallStatus projects the denormalized status column.
func (s State) OverallStatus() Status {
	switch s {
	case StateGranted:
		return StatusGranted
	case StateManagerRejected, StateHRRejected:
		return StatusRejected
	}
	return StatusPending
}

// Label is the display label combining both stages.
func (s State) Label() string {
	switch {
	case s.OverallStatus() == StatusRejected:
		return "Rejected"
	case s.HRApproval() == DecisionApproved:
		return "Granted"
	case s.ManagerApproval() == DecisionApproved:
		return "Manager Approved (awaiting HR)"
	default:
		return "Pending"
	}
}

// StateOf parses a stored (managerApproval, hrApproval, status) triple back
// into the state enum. Triples that no allowed transition sequence can
// produce yield ErrInconsistentState.
func StateOf(managerApproval, hrApproval Decision, status Status) (State, error) {
	switch {
	case managerApproval == DecisionPending && hrApproval == DecisionPending && status == StatusPending:
		return StatePending, nil
	case managerApproval == DecisionApproved && hrApproval == DecisionPending && status == StatusPending:
		return StateManagerApproved, nil
	case managerApproval == DecisionRejected && hrApproval == DecisionPending && status == StatusRejected:
		return StateManagerRejected, nil
	case managerApproval == DecisionApproved && hrApproval == DecisionApproved && status == StatusGranted:
		return StateGranted, nil
	case managerApproval == DecisionApproved && hrApproval == DecisionRejected && status == StatusRejected:
		return StateHRRejected, nil
	}
	return "", ErrInconsistentState
}
