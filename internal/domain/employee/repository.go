package employee

import "context"

type PersonRepository interface {
	Create(ctx context.Context, person Person) (Person, error)
	GetByID(ctx context.Context, id int64) (Person, error)
	GetByEmail(ctx context.Context, email string) (Person, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Person, error)
	// ListAll returns every person; used to hydrate the hierarchy graph at
	// start-up.
	ListAll(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, req UpdatePersonRequest) error
	UpdateSalary(ctx context.Context, id int64, req UpdateSalaryRequest) error
	SetManager(ctx context.Context, employeeID int64, managerID *int64) error
	// ClearManagerFor drops the manager reference of every person managed by
	// managerID.
	ClearManagerFor(ctx context.Context, managerID int64) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Delete(ctx context.Context, id int64) error
}
