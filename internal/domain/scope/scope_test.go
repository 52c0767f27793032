package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

var directory = []user.User{
	{ID: "u1", Department: "IT"},
	{ID: "u2", Department: "IT"},
	{ID: "u3", Department: "Finance"},
	{ID: "u4", Department: "Finance"},
}

func TestForPrincipal_Employee(t *testing.T) {
	s := ForPrincipal(user.Principal{ID: "u1", Role: user.RoleEmployee, Department: "IT"})

	assert.Equal(t, KindSelf, s.Kind)
	assert.False(t, s.NeedsDirectory())
	assert.True(t, s.AllowsUserID("u1"))
	assert.False(t, s.AllowsUserID("u2"))
}

func TestForPrincipal_Manager(t *testing.T) {
	s := ForPrincipal(user.Principal{ID: "u2", Role: user.RoleManager, Department: "IT"})

	assert.Equal(t, KindDepartment, s.Kind)
	assert.True(t, s.NeedsDirectory())

	// Unresolved department scope must not leak anything.
	assert.False(t, s.AllowsUserID("u1"))

	s = s.WithMembers(directory)
	assert.True(t, s.AllowsUserID("u1"))
	assert.True(t, s.AllowsUserID("u2"))
	assert.False(t, s.AllowsUserID("u3"))
	assert.False(t, s.AllowsUserID("unknown"))
}

func TestForPrincipal_HR(t *testing.T) {
	s := ForPrincipal(user.Principal{ID: "u9", Role: user.RoleHR, Department: "People"})

	assert.Equal(t, KindAll, s.Kind)
	assert.False(t, s.NeedsDirectory())
	for _, u := range directory {
		assert.True(t, s.AllowsUserID(u.ID))
	}
}

func TestAllowsDepartment(t *testing.T) {
	manager := ForPrincipal(user.Principal{ID: "u2", Role: user.RoleManager, Department: "IT"})
	hr := ForPrincipal(user.Principal{ID: "u9", Role: user.RoleHR})
	employee := ForPrincipal(user.Principal{ID: "u1", Role: user.RoleEmployee, Department: "IT"})

	assert.True(t, manager.AllowsDepartment("IT"))
	assert.False(t, manager.AllowsDepartment("Finance"))
	assert.True(t, hr.AllowsDepartment("Finance"))
	// Employees never see by department; they go through AllowsUserID.
	assert.False(t, employee.AllowsDepartment("IT"))
}
