package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type personRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) employee.PersonRepository {
	return &personRepository{db: db}
}

const personColumns = `id, company_id, kind, full_name, email, salary, hire_date, status,
	manager_id, position, department, title, is_admin, created_at, updated_at`

func scanPerson(row pgx.Row) (employee.Person, error) {
	var p employee.Person
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Kind, &p.FullName, &p.Email, &p.Salary, &p.HireDate, &p.Status,
		&p.ManagerID, &p.Position, &p.Department, &p.Title, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *personRepository) Create(ctx context.Context, person employee.Person) (employee.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO persons (company_id, kind, full_name, email, salary, hire_date, status,
			manager_id, position, department, title, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + personColumns

	created, err := scanPerson(q.QueryRow(ctx, query,
		person.CompanyID, person.Kind, person.FullName, person.Email, person.Salary,
		person.HireDate, person.Status, person.ManagerID, person.Position,
		person.Department, person.Title, person.IsAdmin,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_persons_email") {
			return employee.Person{}, employee.ErrEmailExists
		}
		return employee.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return created, nil
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (employee.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`

	p, err := scanPerson(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Person{}, employee.ErrPersonNotFound
		}
		return employee.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	return p, nil
}

func (r *personRepository) GetByEmail(ctx context.Context, email string) (employee.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personColumns + ` FROM persons WHERE email = $1`

	p, err := scanPerson(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Person{}, employee.ErrPersonNotFound
		}
		return employee.Person{}, fmt.Errorf("failed to get person by email: %w", err)
	}

	return p, nil
}

func (r *personRepository) ListByCompany(ctx context.Context, companyID int64) ([]employee.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personColumns + ` FROM persons WHERE company_id = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	return collectPersons(rows)
}

func (r *personRepository) ListAll(ctx context.Context) ([]employee.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personColumns + ` FROM persons ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	return collectPersons(rows)
}

func collectPersons(rows pgx.Rows) ([]employee.Person, error) {
	var persons []employee.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func (r *personRepository) Update(ctx context.Context, req employee.UpdatePersonRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE persons SET
			full_name = COALESCE($2, full_name),
			status = COALESCE($3, status),
			position = COALESCE($4, position),
			department = COALESCE($5, department),
			title = COALESCE($6, title),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.FullName, req.Status, req.Position, req.Department, req.Title)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPersonNotFound
	}

	return nil
}

func (r *personRepository) UpdateSalary(ctx context.Context, id int64, req employee.UpdateSalaryRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE persons SET salary = $2, updated_at = NOW() WHERE id = $1`, id, req.Salary)
	if err != nil {
		return fmt.Errorf("failed to update salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPersonNotFound
	}

	return nil
}

func (r *personRepository) SetManager(ctx context.Context, employeeID int64, managerID *int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE persons SET manager_id = $2, updated_at = NOW() WHERE id = $1`, employeeID, managerID)
	if err != nil {
		return fmt.Errorf("failed to set manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPersonNotFound
	}

	return nil
}

func (r *personRepository) ClearManagerFor(ctx context.Context, managerID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE persons SET manager_id = NULL, updated_at = NOW() WHERE manager_id = $1`, managerID)
	if err != nil {
		return fmt.Errorf("failed to clear manager references: %w", err)
	}

	return nil
}

func (r *personRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE persons SET is_admin = $2, updated_at = NOW() WHERE id = $1`, id, isAdmin)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPersonNotFound
	}

	return nil
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_paychecks_employee") {
			return employee.ErrHasPaychecks
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPersonNotFound
	}

	return nil
}
