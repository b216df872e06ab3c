package authz

// Role is the verified role carried in the caller's identity assertion.
// Verification of the assertion (signature, expiry) happens in the transport
// layer; this package only ever sees the resulting (id, role) pair.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
	RoleEmployee Role = "employee"
)

// Actor is a verified caller identity.
type Actor struct {
	ID   int64
	Role Role
}

// Action names a payroll or personnel operation subject to authorization.
type Action string

const (
	ActionViewPaycheck   Action = "paycheck:view"
	ActionCreatePaycheck Action = "paycheck:create"
	ActionUpdatePaycheck Action = "paycheck:update"
	ActionVoidPaycheck   Action = "paycheck:void"
	ActionDeletePaycheck Action = "paycheck:delete"
	ActionUpdateSalary   Action = "person:update_salary"
	ActionGrantBonus     Action = "person:grant_bonus"
	ActionViewReports    Action = "person:view_reports"
	ActionGrantAdmin     Action = "person:grant_admin"
)

// selfScoped actions are permitted when the actor is the target.
var selfScoped = map[Action]bool{
	ActionViewPaycheck: true,
}

// managerScoped actions are permitted when the actor is an employer and an
// ancestor of the target in the hierarchy. Granting or revoking the
// administrative role is deliberately in neither set.
var managerScoped = map[Action]bool{
	ActionViewPaycheck:   true,
	ActionCreatePaycheck: true,
	ActionUpdatePaycheck: true,
	ActionVoidPaycheck:   true,
	ActionDeletePaycheck: true,
	ActionUpdateSalary:   true,
	ActionGrantBonus:     true,
	ActionViewReports:    true,
}

// AncestryChecker answers transitive manager queries. Satisfied by
// hierarchy.Graph.
type AncestryChecker interface {
	IsAncestor(candidateID, employeeID int64) bool
}

// Gate decides whether a caller may perform an action on a target person.
type Gate struct {
	hierarchy AncestryChecker
}

func NewGate(hierarchy AncestryChecker) *Gate {
	return &Gate{hierarchy: hierarchy}
}

// Authorize permits administrators unconditionally, the target themselves for
// self-scoped actions, and ancestor employers for manager-scoped actions.
// Everything else is ErrForbidden.
func (g *Gate) Authorize(actor Actor, targetPersonID int64, action Action) error {
	if actor.Role == RoleAdmin {
		return nil
	}
	if action == ActionGrantAdmin {
		return ErrForbidden
	}
	if actor.ID == targetPersonID {
		if selfScoped[action] {
			return nil
		}
		return ErrForbidden
	}
	if actor.Role == RoleEmployer && managerScoped[action] && g.hierarchy.IsAncestor(actor.ID, targetPersonID) {
		return nil
	}
	return ErrForbidden
}
