package employee

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePersonRequest struct {
	CompanyID  int64           `json:"company_id"`
	Kind       string          `json:"kind"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"` // YYYY-MM-DD
	Position   *string         `json:"position,omitempty"`
	Department *string         `json:"department,omitempty"`
	Title      *string         `json:"title,omitempty"`
}

func (r *CreatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Kind != string(KindEmployee) && r.Kind != string(KindEmployer) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'employee' or 'employer'"})
	}
	if r.Kind == string(KindEmployee) && (r.Position == nil || validator.IsEmpty(*r.Position)) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required for employees"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonRequest struct {
	ID         int64   `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Status     *string `json:"status,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Title      *string `json:"title,omitempty"`
}

func (r *UpdatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, inactive, on_leave"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID     int64           `json:"-"`
	Salary decimal.Decimal `json:"salary"`
}

func (r *UpdateSalaryRequest) Validate() error {
	if r.Salary.IsNegative() {
		return validator.ValidationErrors{
			{Field: "salary", Message: "must be non-negative"},
		}
	}
	return nil
}

type AssignManagerRequest struct {
	EmployeeID int64 `json:"-"`
	ManagerID  int64 `json:"manager_id"`
}

type GrantAdminRequest struct {
	PersonID int64 `json:"-"`
	IsAdmin  bool  `json:"is_admin"`
}

type PersonResponse struct {
	ID         int64           `json:"id"`
	CompanyID  int64           `json:"company_id"`
	Kind       string          `json:"kind"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Status     string          `json:"status"`
	ManagerID  *int64          `json:"manager_id,omitempty"`
	Position   *string         `json:"position,omitempty"`
	Department *string         `json:"department,omitempty"`
	Title      *string         `json:"title,omitempty"`
	IsAdmin    bool            `json:"is_admin"`
}
