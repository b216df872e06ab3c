package company

import "github.com/paydesk/payroll-backend-go/internal/pkg/validator"

type CreateCompanyRequest struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{
			{Field: "name", Message: "is required"},
		}
	}
	return nil
}

type UpdateCompanyRequest struct {
	ID       int64   `json:"-"`
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		return validator.ValidationErrors{
			{Field: "name", Message: "cannot be empty"},
		}
	}
	return nil
}

type CompanyResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Industry *string `json:"industry,omitempty"`
}
