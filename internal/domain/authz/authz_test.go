package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubHierarchy answers IsAncestor from a fixed set of (ancestor, employee)
// pairs.
type stubHierarchy struct {
	edges map[[2]int64]bool
}

func (s *stubHierarchy) IsAncestor(candidateID, employeeID int64) bool {
	return s.edges[[2]int64{candidateID, employeeID}]
}

func testGate() *Gate {
	// 10 manages 20 (directly or transitively); 30 is unrelated.
	return NewGate(&stubHierarchy{edges: map[[2]int64]bool{
		{10, 20}: true,
	}})
}

func TestGate_Authorize_AdminBypassesHierarchy(t *testing.T) {
	gate := testGate()
	admin := Actor{ID: 99, Role: RoleAdmin}

	assert.NoError(t, gate.Authorize(admin, 20, ActionUpdateSalary))
	assert.NoError(t, gate.Authorize(admin, 20, ActionGrantAdmin))
	assert.NoError(t, gate.Authorize(admin, 30, ActionDeletePaycheck))
}

func TestGate_Authorize_ManagerOverReport(t *testing.T) {
	gate := testGate()
	manager := Actor{ID: 10, Role: RoleEmployer}

	assert.NoError(t, gate.Authorize(manager, 20, ActionGrantBonus))
	assert.NoError(t, gate.Authorize(manager, 20, ActionUpdateSalary))
	assert.NoError(t, gate.Authorize(manager, 20, ActionViewPaycheck))
}

func TestGate_Authorize_UnrelatedEmployerForbidden(t *testing.T) {
	gate := testGate()
	stranger := Actor{ID: 30, Role: RoleEmployer}

	assert.ErrorIs(t, gate.Authorize(stranger, 20, ActionGrantBonus), ErrForbidden)
	assert.ErrorIs(t, gate.Authorize(stranger, 20, ActionViewPaycheck), ErrForbidden)
}

func TestGate_Authorize_SelfScope(t *testing.T) {
	gate := testGate()
	employee := Actor{ID: 20, Role: RoleEmployee}

	assert.NoError(t, gate.Authorize(employee, 20, ActionViewPaycheck))
	assert.ErrorIs(t, gate.Authorize(employee, 20, ActionUpdateSalary), ErrForbidden)
	assert.ErrorIs(t, gate.Authorize(employee, 20, ActionCreatePaycheck), ErrForbidden)
}

func TestGate_Authorize_EmployeeCannotActOnOthers(t *testing.T) {
	gate := testGate()
	employee := Actor{ID: 20, Role: RoleEmployee}

	assert.ErrorIs(t, gate.Authorize(employee, 30, ActionViewPaycheck), ErrForbidden)
}

func TestGate_Authorize_GrantAdminIsAdminOnly(t *testing.T) {
	gate := testGate()

	manager := Actor{ID: 10, Role: RoleEmployer}
	assert.ErrorIs(t, gate.Authorize(manager, 20, ActionGrantAdmin), ErrForbidden)

	self := Actor{ID: 20, Role: RoleEmployee}
	assert.ErrorIs(t, gate.Authorize(self, 20, ActionGrantAdmin), ErrForbidden)
}
