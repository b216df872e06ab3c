package company

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:     req.Name,
		Industry: req.Industry,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(created), nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, id int64) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return mapToCompanyResponse(c), nil
}

func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, mapToCompanyResponse(c))
	}
	return result, nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.Update(ctx, req); err != nil {
		return company.CompanyResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *CompanyServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.companyRepo.Delete(ctx, id)
}

func mapToCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
	}
}
