package payroll

import (
	"context"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	paycheckRepo payroll.PaycheckRepository
	calculator   *payroll.Calculator
	registry     *tax.Registry
	gate         *authz.Gate
}

func NewPayrollService(
	paycheckRepo payroll.PaycheckRepository,
	calculator *payroll.Calculator,
	registry *tax.Registry,
	gate *authz.Gate,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		paycheckRepo: paycheckRepo,
		calculator:   calculator,
		registry:     registry,
		gate:         gate,
	}
}

func (s *PayrollServiceImpl) ComputePaycheck(ctx context.Context, req payroll.ComputePaycheckRequest) (payroll.PaycheckResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}
	if err := s.gate.Authorize(actor, req.EmployeeID, authz.ActionCreatePaycheck); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	payDate, _ := validator.IsValidDate(req.PayDate)
	paycheck, err := s.calculator.Compute(req.EmployeeID, req.GrossPay, req.Bonus, req.StrategyName, req.InsuranceDeduction, payDate)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}

	created, err := s.paycheckRepo.Create(ctx, paycheck)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}

	return mapToPaycheckResponse(created), nil
}

func (s *PayrollServiceImpl) GetPaycheck(ctx context.Context, id int64) (payroll.PaycheckResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}

	paycheck, err := s.paycheckRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}
	if err := s.gate.Authorize(actor, paycheck.EmployeeID, authz.ActionViewPaycheck); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	return mapToPaycheckResponse(paycheck), nil
}

func (s *PayrollServiceImpl) ListPaychecks(ctx context.Context, employeeID int64) ([]payroll.PaycheckResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(actor, employeeID, authz.ActionViewPaycheck); err != nil {
		return nil, err
	}

	paychecks, err := s.paycheckRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PaycheckResponse, 0, len(paychecks))
	for _, p := range paychecks {
		result = append(result, mapToPaycheckResponse(p))
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdatePaycheck(ctx context.Context, req payroll.UpdatePaycheckRequest) (payroll.PaycheckResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}

	paycheck, err := s.paycheckRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}
	if err := s.gate.Authorize(actor, paycheck.EmployeeID, authz.ActionUpdatePaycheck); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	// Gross pay first: it re-derives the tax figure, which an explicit
	// tax_deduction override may then replace.
	if req.GrossPay != nil {
		if err := s.calculator.SetGrossPay(&paycheck, *req.GrossPay); err != nil {
			return payroll.PaycheckResponse{}, err
		}
	}
	if req.TaxDeduction != nil {
		if err := s.calculator.SetTaxDeduction(&paycheck, *req.TaxDeduction); err != nil {
			return payroll.PaycheckResponse{}, err
		}
	}
	if req.Bonus != nil || req.ClearBonus {
		bonus := req.Bonus
		if req.ClearBonus {
			bonus = nil
		}
		if err := s.calculator.SetBonus(&paycheck, bonus); err != nil {
			return payroll.PaycheckResponse{}, err
		}
	}
	if req.InsuranceDeduction != nil {
		if err := s.calculator.SetInsuranceDeduction(&paycheck, *req.InsuranceDeduction); err != nil {
			return payroll.PaycheckResponse{}, err
		}
	}

	if err := s.paycheckRepo.UpdateAmounts(ctx, paycheck); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	return mapToPaycheckResponse(paycheck), nil
}

func (s *PayrollServiceImpl) TransitionPaycheck(ctx context.Context, req payroll.TransitionRequest) (payroll.PaycheckResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaycheckResponse{}, err
	}
	return s.transition(ctx, req.ID, payroll.Status(req.Status), authz.ActionUpdatePaycheck)
}

func (s *PayrollServiceImpl) VoidPaycheck(ctx context.Context, id int64) (payroll.PaycheckResponse, error) {
	return s.transition(ctx, id, payroll.StatusVoided, authz.ActionVoidPaycheck)
}

func (s *PayrollServiceImpl) transition(ctx context.Context, id int64, next payroll.Status, action authz.Action) (payroll.PaycheckResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}

	paycheck, err := s.paycheckRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PaycheckResponse{}, err
	}
	if err := s.gate.Authorize(actor, paycheck.EmployeeID, action); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	expected := paycheck.Status
	if err := paycheck.Transition(next); err != nil {
		return payroll.PaycheckResponse{}, err
	}
	if err := s.paycheckRepo.UpdateStatus(ctx, id, expected, next); err != nil {
		return payroll.PaycheckResponse{}, err
	}

	return mapToPaycheckResponse(paycheck), nil
}

func (s *PayrollServiceImpl) DeletePaycheck(ctx context.Context, id int64) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	paycheck, err := s.paycheckRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.Authorize(actor, paycheck.EmployeeID, authz.ActionDeletePaycheck); err != nil {
		return err
	}
	if !paycheck.Deletable() {
		return payroll.ErrPaycheckLocked
	}

	return s.paycheckRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) ListStrategyNames(ctx context.Context) []string {
	return s.registry.ListNames()
}

func mapToPaycheckResponse(p payroll.Paycheck) payroll.PaycheckResponse {
	return payroll.PaycheckResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		GrossPay:           p.GrossPay,
		Bonus:              p.Bonus,
		TaxDeduction:       p.TaxDeduction,
		InsuranceDeduction: p.InsuranceDeduction,
		NetPay:             p.NetPay,
		PayDate:            p.PayDate.Format("2006-01-02"),
		Status:             string(p.Status),
		StrategyName:       p.StrategyName,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}
