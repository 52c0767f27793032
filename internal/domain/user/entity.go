package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee - own records only
	RoleManager  Role = "manager"  // Can decide leave for their department
	RoleHR       Role = "hr"       // Final approval stage - sees everything
)

// Roles lists every role accepted at registration.
var Roles = []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}

type User struct {
	ID           string
	Name         string
	Surname      string
	Email        string
	PasswordHash *string
	Role         Role
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity attached to every request.
// It is built once at login, carried in the session token, and never
// mutated for the lifetime of the session.
type Principal struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

// Principal strips the credential fields off a stored user.
func (u User) Principal() Principal {
	return Principal{
		ID:         u.ID,
		Name:       u.Name,
		Surname:    u.Surname,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
	}
}

// FullName is the display name used on attendance and leave records.
func (p Principal) FullName() string {
	return p.Name + " " + p.Surname
}

func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}

func (p Principal) IsHR() bool {
	return p.Role == RoleHR
}

// PrincipalFromClaims rebuilds the principal from session token claims.
// Missing or malformed claims yield ok=false; the caller treats that as
// logged-out rather than failing hard.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, bool) {
	id, okID := claims["user_id"].(string)
	name, okName := claims["name"].(string)
	surname, okSurname := claims["surname"].(string)
	email, okEmail := claims["email"].(string)
	roleStr, okRole := claims["role"].(string)
	department, okDept := claims["department"].(string)

	if !okID || !okName || !okSurname || !okEmail || !okRole || !okDept {
		return Principal{}, false
	}

	role := Role(roleStr)
	switch role {
	case RoleEmployee, RoleManager, RoleHR:
	default:
		return Principal{}, false
	}

	return Principal{
		ID:         id,
		Name:       name,
		Surname:    surname,
		Email:      email,
		Role:       role,
		Department: department,
	}, true
}
