package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id int64) error
}
