// Package scope implements the role-based visibility policy shared by the
// attendance and leave views. Every listing endpoint derives one Scope from
// the acting principal and filters through it, so the two views can never
// drift apart on who may see what.
package scope

import (
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

type Kind string

const (
	// KindSelf - own records only (employee)
	KindSelf Kind = "self"
	// KindDepartment - records of users sharing the principal's department (manager)
	KindDepartment Kind = "department"
	// KindAll - every record (hr)
	KindAll Kind = "all"
)

// Scope describes the subset of records one principal may see.
// A department scope starts unresolved: membership is only known after the
// user directory has been consulted via WithMembers.
type Scope struct {
	Kind       Kind
	UserID     string
	Department string

	members map[string]struct{}
}

// ForPrincipal maps a role to its visibility scope. This is the single
// place where the role switch lives.
func ForPrincipal(p user.Principal) Scope {
	switch p.Role {
	case user.RoleHR:
		return Scope{Kind: KindAll}
	case user.RoleManager:
		return Scope{Kind: KindDepartment, UserID: p.ID, Department: p.Department}
	default:
		return Scope{Kind: KindSelf, UserID: p.ID}
	}
}

// NeedsDirectory reports whether the scope must resolve department
// membership against the user directory before it can filter by user id.
func (s Scope) NeedsDirectory() bool {
	return s.Kind == KindDepartment
}

// WithMembers resolves a department scope against the user directory,
// keeping the ids of users that share the scope's department.
func (s Scope) WithMembers(users []user.User) Scope {
	if s.Kind != KindDepartment {
		return s
	}
	members := make(map[string]struct{})
	for _, u := range users {
		if u.Department == s.Department {
			members[u.ID] = struct{}{}
		}
	}
	s.members = members
	return s
}

// AllowsUserID reports whether records owned by the given user id fall
// inside the scope. An unresolved department scope allows nothing.
func (s Scope) AllowsUserID(id string) bool {
	switch s.Kind {
	case KindAll:
		return true
	case KindSelf:
		return id == s.UserID
	case KindDepartment:
		_, ok := s.members[id]
		return ok
	}
	return false
}

// AllowsDepartment reports whether records tagged with the given
// department fall inside the scope. Used for leave requests, which carry
// their department directly.
func (s Scope) AllowsDepartment(department string) bool {
	switch s.Kind {
	case KindAll:
		return true
	case KindDepartment:
		return department == s.Department
	}
	return false
}
