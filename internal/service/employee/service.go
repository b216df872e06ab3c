package employee

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/hierarchy"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

// PersonServiceImpl keeps the persisted person records and the in-memory
// hierarchy graph in step: every mutation goes to the database first and is
// mirrored into the graph on success.
type PersonServiceImpl struct {
	db         *database.DB
	personRepo employee.PersonRepository
	graph      *hierarchy.Graph
	gate       *authz.Gate
}

func NewPersonService(
	db *database.DB,
	personRepo employee.PersonRepository,
	graph *hierarchy.Graph,
	gate *authz.Gate,
) employee.PersonService {
	return &PersonServiceImpl{
		db:         db,
		personRepo: personRepo,
		graph:      graph,
		gate:       gate,
	}
}

// HydrateGraph loads every person and manager edge into the hierarchy graph.
// Called once at start-up before the server accepts requests.
func HydrateGraph(ctx context.Context, personRepo employee.PersonRepository, graph *hierarchy.Graph) error {
	persons, err := personRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range persons {
		graph.AddPerson(p.ID, p.CanManage())
	}
	for _, p := range persons {
		if p.ManagerID == nil {
			continue
		}
		if err := graph.AssignManager(p.ID, *p.ManagerID); err != nil {
			return err
		}
	}
	return nil
}

func (s *PersonServiceImpl) Create(ctx context.Context, req employee.CreatePersonRequest) (employee.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PersonResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)
	person := employee.Person{
		CompanyID:  req.CompanyID,
		Kind:       employee.Kind(req.Kind),
		FullName:   req.FullName,
		Email:      req.Email,
		Salary:     req.Salary,
		HireDate:   hireDate,
		Status:     employee.StatusActive,
		Position:   req.Position,
		Department: req.Department,
		Title:      req.Title,
	}

	created, err := s.personRepo.Create(ctx, person)
	if err != nil {
		return employee.PersonResponse{}, err
	}
	s.graph.AddPerson(created.ID, created.CanManage())

	return mapToPersonResponse(created), nil
}

func (s *PersonServiceImpl) GetByID(ctx context.Context, id int64) (employee.PersonResponse, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return employee.PersonResponse{}, err
	}
	return mapToPersonResponse(person), nil
}

func (s *PersonServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]employee.PersonResponse, error) {
	persons, err := s.personRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.PersonResponse, 0, len(persons))
	for _, p := range persons {
		result = append(result, mapToPersonResponse(p))
	}
	return result, nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, req employee.UpdatePersonRequest) (employee.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PersonResponse{}, err
	}

	if err := s.personRepo.Update(ctx, req); err != nil {
		return employee.PersonResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *PersonServiceImpl) UpdateSalary(ctx context.Context, req employee.UpdateSalaryRequest) (employee.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PersonResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return employee.PersonResponse{}, err
	}
	if err := s.gate.Authorize(actor, req.ID, authz.ActionUpdateSalary); err != nil {
		return employee.PersonResponse{}, err
	}

	if err := s.personRepo.UpdateSalary(ctx, req.ID, req); err != nil {
		return employee.PersonResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// AssignManager validates the edge against the graph before persisting, so a
// cycle never reaches the database. The graph serializes concurrent checks.
func (s *PersonServiceImpl) AssignManager(ctx context.Context, req employee.AssignManagerRequest) error {
	if _, err := s.personRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	manager, err := s.personRepo.GetByID(ctx, req.ManagerID)
	if err != nil {
		return err
	}
	if !manager.CanManage() {
		return hierarchy.ErrNotAnEmployer
	}

	if err := s.graph.AssignManager(req.EmployeeID, req.ManagerID); err != nil {
		return err
	}
	if err := s.personRepo.SetManager(ctx, req.EmployeeID, &req.ManagerID); err != nil {
		// Roll the in-memory edge back so graph and store stay consistent.
		s.graph.ClearManager(req.EmployeeID)
		return err
	}
	return nil
}

func (s *PersonServiceImpl) RemoveManager(ctx context.Context, employeeID int64) error {
	if _, err := s.personRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}
	if err := s.personRepo.SetManager(ctx, employeeID, nil); err != nil {
		return err
	}
	s.graph.ClearManager(employeeID)
	return nil
}

func (s *PersonServiceImpl) DirectReports(ctx context.Context, employerID int64) ([]employee.PersonResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	// Viewing another employer's reports still requires ancestry over them.
	if actor.ID != employerID {
		if err := s.gate.Authorize(actor, employerID, authz.ActionViewReports); err != nil {
			return nil, err
		}
	}

	result := make([]employee.PersonResponse, 0)
	for _, id := range s.graph.DirectReports(employerID) {
		person, err := s.personRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, mapToPersonResponse(person))
	}
	return result, nil
}

// GrantAdmin flips the administrative flag. The route is admin-gated, and the
// gate rejects non-admin actors as well: managers never promote reports.
func (s *PersonServiceImpl) GrantAdmin(ctx context.Context, req employee.GrantAdminRequest) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.gate.Authorize(actor, req.PersonID, authz.ActionGrantAdmin); err != nil {
		return err
	}

	return s.personRepo.SetAdmin(ctx, req.PersonID, req.IsAdmin)
}

// Delete removes the person. Their direct reports become managerless in both
// the store and the graph; reassignment is left to the caller.
func (s *PersonServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.personRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.personRepo.ClearManagerFor(txCtx, id); err != nil {
			return err
		}
		return s.personRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.graph.RemovePerson(id)
	return nil
}

func mapToPersonResponse(p employee.Person) employee.PersonResponse {
	return employee.PersonResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Kind:       string(p.Kind),
		FullName:   p.FullName,
		Email:      p.Email,
		Salary:     p.Salary,
		HireDate:   p.HireDate.Format("2006-01-02"),
		Status:     string(p.Status),
		ManagerID:  p.ManagerID,
		Position:   p.Position,
		Department: p.Department,
		Title:      p.Title,
		IsAdmin:    p.IsAdmin,
	}
}
