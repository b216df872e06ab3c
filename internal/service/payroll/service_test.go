package payroll

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaycheckRepo is an in-memory PaycheckRepository honoring the same
// conditional-update contract as the PostgreSQL implementation.
type fakePaycheckRepo struct {
	nextID    int64
	paychecks map[int64]payroll.Paycheck
}

func newFakePaycheckRepo() *fakePaycheckRepo {
	return &fakePaycheckRepo{nextID: 1, paychecks: make(map[int64]payroll.Paycheck)}
}

func (r *fakePaycheckRepo) Create(ctx context.Context, p payroll.Paycheck) (payroll.Paycheck, error) {
	p.ID = r.nextID
	r.nextID++
	r.paychecks[p.ID] = p
	return p, nil
}

func (r *fakePaycheckRepo) GetByID(ctx context.Context, id int64) (payroll.Paycheck, error) {
	p, ok := r.paychecks[id]
	if !ok {
		return payroll.Paycheck{}, payroll.ErrPaycheckNotFound
	}
	return p, nil
}

func (r *fakePaycheckRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]payroll.Paycheck, error) {
	var result []payroll.Paycheck
	for _, p := range r.paychecks {
		if p.EmployeeID == employeeID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePaycheckRepo) UpdateAmounts(ctx context.Context, p payroll.Paycheck) error {
	stored, ok := r.paychecks[p.ID]
	if !ok {
		return payroll.ErrPaycheckNotFound
	}
	if !stored.Mutable() {
		return payroll.ErrPaycheckLocked
	}
	p.Status = stored.Status
	r.paychecks[p.ID] = p
	return nil
}

func (r *fakePaycheckRepo) UpdateStatus(ctx context.Context, id int64, expected, next payroll.Status) error {
	stored, ok := r.paychecks[id]
	if !ok {
		return payroll.ErrPaycheckNotFound
	}
	if stored.Status != expected {
		return payroll.ErrStatusConflict
	}
	stored.Status = next
	r.paychecks[id] = stored
	return nil
}

func (r *fakePaycheckRepo) Delete(ctx context.Context, id int64) error {
	stored, ok := r.paychecks[id]
	if !ok {
		return payroll.ErrPaycheckNotFound
	}
	if !stored.Deletable() {
		return payroll.ErrPaycheckLocked
	}
	delete(r.paychecks, id)
	return nil
}

// allowAll satisfies authz.AncestryChecker and makes every employer an
// ancestor of everyone, keeping authorization out of the way unless a test
// wants it.
type allowAll struct{}

func (allowAll) IsAncestor(candidateID, employeeID int64) bool { return true }

type denyAll struct{}

func (denyAll) IsAncestor(candidateID, employeeID int64) bool { return false }

func newTestService(t *testing.T, checker authz.AncestryChecker) (payroll.PayrollService, *fakePaycheckRepo) {
	registry := tax.NewRegistry()
	strategy, err := tax.NewFlatRate("flat-15", decimal.NewFromFloat(0.15))
	require.NoError(t, err)
	require.NoError(t, registry.Register("flat-15", strategy))

	repo := newFakePaycheckRepo()
	service := NewPayrollService(repo, payroll.NewCalculator(registry), registry, authz.NewGate(checker))
	return service, repo
}

// actorContext builds a context carrying verified claims the way the Verifier
// middleware does.
func actorContext(t *testing.T, personID int64, role authz.Role) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"person_id": personID,
		"role":      string(role),
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func computeRequest(employeeID int64) payroll.ComputePaycheckRequest {
	return payroll.ComputePaycheckRequest{
		EmployeeID:         employeeID,
		GrossPay:           decimal.NewFromInt(50000),
		StrategyName:       "flat-15",
		InsuranceDeduction: decimal.NewFromInt(500),
		PayDate:            "2026-01-31",
	}
}

func TestPayrollService_ComputePaycheck(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	result, err := service.ComputePaycheck(ctx, computeRequest(7))

	require.NoError(t, err)
	assert.Equal(t, "draft", result.Status)
	assert.True(t, result.TaxDeduction.Equal(decimal.NewFromInt(7500)))
	assert.True(t, result.NetPay.Equal(decimal.NewFromInt(42000)))
	assert.Equal(t, "2026-01-31", result.PayDate)
}

func TestPayrollService_ComputePaycheck_Forbidden(t *testing.T) {
	service, _ := newTestService(t, denyAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	_, err := service.ComputePaycheck(ctx, computeRequest(7))

	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestPayrollService_TransitionPaycheck_FullLifecycle(t *testing.T) {
	service, repo := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	created, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)

	for _, next := range []string{"pending", "paid", "voided"} {
		result, err := service.TransitionPaycheck(ctx, payroll.TransitionRequest{ID: created.ID, Status: next})
		require.NoError(t, err)
		assert.Equal(t, next, result.Status)
	}

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusVoided, stored.Status)
}

func TestPayrollService_TransitionPaycheck_Illegal(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	created, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)
	_, err = service.TransitionPaycheck(ctx, payroll.TransitionRequest{ID: created.ID, Status: "paid"})
	require.NoError(t, err)

	_, err = service.TransitionPaycheck(ctx, payroll.TransitionRequest{ID: created.ID, Status: "pending"})

	assert.ErrorIs(t, err, payroll.ErrIllegalStatusTransition)
}

func TestPayrollService_VoidPaycheck_NotIdempotent(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	created, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)
	_, err = service.VoidPaycheck(ctx, created.ID)
	require.NoError(t, err)

	_, err = service.VoidPaycheck(ctx, created.ID)

	assert.ErrorIs(t, err, payroll.ErrIllegalStatusTransition)
}

func TestPayrollService_UpdatePaycheck_GrossRecomputesTax(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	created, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)

	newGross := decimal.NewFromInt(60000)
	result, err := service.UpdatePaycheck(ctx, payroll.UpdatePaycheckRequest{ID: created.ID, GrossPay: &newGross})

	require.NoError(t, err)
	assert.True(t, result.TaxDeduction.Equal(decimal.NewFromInt(9000)), "tax %s", result.TaxDeduction)
	assert.True(t, result.NetPay.Equal(decimal.NewFromInt(50500)), "net %s", result.NetPay)
}

func TestPayrollService_UpdatePaycheck_LockedAfterPaid(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	created, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)
	_, err = service.TransitionPaycheck(ctx, payroll.TransitionRequest{ID: created.ID, Status: "paid"})
	require.NoError(t, err)

	newGross := decimal.NewFromInt(60000)
	_, err = service.UpdatePaycheck(ctx, payroll.UpdatePaycheckRequest{ID: created.ID, GrossPay: &newGross})

	assert.ErrorIs(t, err, payroll.ErrPaycheckLocked)
}

func TestPayrollService_DeletePaycheck_OnlyDraft(t *testing.T) {
	service, _ := newTestService(t, allowAll{})
	ctx := actorContext(t, 1, authz.RoleEmployer)

	draft, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)
	assert.NoError(t, service.DeletePaycheck(ctx, draft.ID))

	paid, err := service.ComputePaycheck(ctx, computeRequest(7))
	require.NoError(t, err)
	_, err = service.TransitionPaycheck(ctx, payroll.TransitionRequest{ID: paid.ID, Status: "paid"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeletePaycheck(ctx, paid.ID), payroll.ErrPaycheckLocked)
}

func TestPayrollService_GetPaycheck_SelfAccess(t *testing.T) {
	service, _ := newTestService(t, denyAll{})
	employerCtx := actorContext(t, 1, authz.RoleAdmin)

	created, err := service.ComputePaycheck(employerCtx, computeRequest(7))
	require.NoError(t, err)

	selfCtx := actorContext(t, 7, authz.RoleEmployee)
	result, err := service.GetPaycheck(selfCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.EmployeeID)

	otherCtx := actorContext(t, 8, authz.RoleEmployee)
	_, err = service.GetPaycheck(otherCtx, created.ID)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestPayrollService_ListStrategyNames(t *testing.T) {
	service, _ := newTestService(t, allowAll{})

	assert.Equal(t, []string{"flat-15"}, service.ListStrategyNames(context.Background()))
}
