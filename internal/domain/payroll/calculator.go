package payroll

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Calculator derives paycheck figures from gross pay, bonus, a named tax
// strategy and an insurance deduction. It never persists anything; storage
// belongs to the repository.
type Calculator struct {
	registry *tax.Registry
}

func NewCalculator(registry *tax.Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Compute builds a new draft paycheck. Gross pay, bonus (when present) and
// the insurance deduction must be non-negative; net pay may still come out
// negative and is surfaced rather than clamped.
func (c *Calculator) Compute(employeeID int64, grossPay decimal.Decimal, bonus *decimal.Decimal, strategyName string, insuranceDeduction decimal.Decimal, payDate time.Time) (Paycheck, error) {
	if grossPay.IsNegative() || insuranceDeduction.IsNegative() {
		return Paycheck{}, ErrInvalidInput
	}
	if bonus != nil && bonus.IsNegative() {
		return Paycheck{}, ErrInvalidInput
	}

	strategy, err := c.registry.Resolve(strategyName)
	if err != nil {
		return Paycheck{}, err
	}
	taxDeduction, err := strategy.CalculateTax(grossPay)
	if err != nil {
		return Paycheck{}, err
	}

	p := Paycheck{
		EmployeeID:         employeeID,
		GrossPay:           grossPay,
		Bonus:              bonus,
		TaxDeduction:       taxDeduction,
		InsuranceDeduction: insuranceDeduction,
		PayDate:            payDate,
		Status:             StatusDraft,
		StrategyName:       strategyName,
	}
	p.recalcNet()
	return p, nil
}

// SetGrossPay replaces the gross pay and re-runs the tax strategy recorded on
// the paycheck, so tax and net stay consistent with the new gross. The other
// setters keep the recorded tax figure untouched.
func (c *Calculator) SetGrossPay(p *Paycheck, grossPay decimal.Decimal) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}
	if grossPay.IsNegative() {
		return ErrInvalidInput
	}
	strategy, err := c.registry.Resolve(p.StrategyName)
	if err != nil {
		return err
	}
	taxDeduction, err := strategy.CalculateTax(grossPay)
	if err != nil {
		return err
	}
	p.GrossPay = grossPay
	p.TaxDeduction = taxDeduction
	p.recalcNet()
	return nil
}

// SetBonus replaces the bonus (nil clears it) and re-derives net pay from the
// stored tax figure.
func (c *Calculator) SetBonus(p *Paycheck, bonus *decimal.Decimal) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}
	if bonus != nil && bonus.IsNegative() {
		return ErrInvalidInput
	}
	p.Bonus = bonus
	p.recalcNet()
	return nil
}

// SetTaxDeduction overrides the recorded tax figure directly, e.g. after a
// manual correction.
func (c *Calculator) SetTaxDeduction(p *Paycheck, taxDeduction decimal.Decimal) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}
	if taxDeduction.IsNegative() {
		return ErrInvalidInput
	}
	p.TaxDeduction = taxDeduction
	p.recalcNet()
	return nil
}

func (c *Calculator) SetInsuranceDeduction(p *Paycheck, insuranceDeduction decimal.Decimal) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}
	if insuranceDeduction.IsNegative() {
		return ErrInvalidInput
	}
	p.InsuranceDeduction = insuranceDeduction
	p.recalcNet()
	return nil
}
