package payroll

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputePaycheckRequest struct {
	EmployeeID         int64            `json:"-"`
	GrossPay           decimal.Decimal  `json:"gross_pay"`
	Bonus              *decimal.Decimal `json:"bonus,omitempty"`
	StrategyName       string           `json:"strategy_name"`
	InsuranceDeduction decimal.Decimal  `json:"insurance_deduction"`
	PayDate            string           `json:"pay_date"` // YYYY-MM-DD
}

func (r *ComputePaycheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_pay", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.InsuranceDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "insurance_deduction", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.StrategyName) {
		errs = append(errs, validator.ValidationError{Field: "strategy_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePaycheckRequest carries partial monetary updates. A present field
// replaces the stored value; ClearBonus drops the bonus entirely.
type UpdatePaycheckRequest struct {
	ID                 int64            `json:"-"`
	GrossPay           *decimal.Decimal `json:"gross_pay,omitempty"`
	Bonus              *decimal.Decimal `json:"bonus,omitempty"`
	ClearBonus         bool             `json:"clear_bonus,omitempty"`
	TaxDeduction       *decimal.Decimal `json:"tax_deduction,omitempty"`
	InsuranceDeduction *decimal.Decimal `json:"insurance_deduction,omitempty"`
}

func (r *UpdatePaycheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossPay != nil && r.GrossPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_pay", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.ClearBonus {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "cannot both set and clear the bonus"})
	}
	if r.TaxDeduction != nil && r.TaxDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tax_deduction", Message: "must be non-negative"})
	}
	if r.InsuranceDeduction != nil && r.InsuranceDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "insurance_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "must be one of draft, pending, paid, voided"},
		}
	}
	return nil
}

type PaycheckResponse struct {
	ID                 int64            `json:"id"`
	EmployeeID         int64            `json:"employee_id"`
	GrossPay           decimal.Decimal  `json:"gross_pay"`
	Bonus              *decimal.Decimal `json:"bonus,omitempty"`
	TaxDeduction       decimal.Decimal  `json:"tax_deduction"`
	InsuranceDeduction decimal.Decimal  `json:"insurance_deduction"`
	NetPay             decimal.Decimal  `json:"net_pay"`
	PayDate            string           `json:"pay_date"`
	Status             string           `json:"status"`
	StrategyName       string           `json:"strategy_name"`
	CreatedAt          string           `json:"created_at"`
}
