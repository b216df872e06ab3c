package employee

import "context"

type PersonService interface {
	Create(ctx context.Context, req CreatePersonRequest) (PersonResponse, error)
	GetByID(ctx context.Context, id int64) (PersonResponse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]PersonResponse, error)
	Update(ctx context.Context, req UpdatePersonRequest) (PersonResponse, error)
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (PersonResponse, error)
	AssignManager(ctx context.Context, req AssignManagerRequest) error
	RemoveManager(ctx context.Context, employeeID int64) error
	DirectReports(ctx context.Context, employerID int64) ([]PersonResponse, error)
	GrantAdmin(ctx context.Context, req GrantAdminRequest) error
	Delete(ctx context.Context, id int64) error
}
