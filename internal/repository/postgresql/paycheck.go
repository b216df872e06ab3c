package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type paycheckRepository struct {
	db *database.DB
}

func NewPaycheckRepository(db *database.DB) payroll.PaycheckRepository {
	return &paycheckRepository{db: db}
}

const paycheckColumns = `id, employee_id, gross_pay, bonus, tax_deduction, insurance_deduction,
	net_pay, pay_date, status, strategy_name, created_at, updated_at`

func scanPaycheck(row pgx.Row) (payroll.Paycheck, error) {
	var p payroll.Paycheck
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.GrossPay, &p.Bonus, &p.TaxDeduction, &p.InsuranceDeduction,
		&p.NetPay, &p.PayDate, &p.Status, &p.StrategyName, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *paycheckRepository) Create(ctx context.Context, paycheck payroll.Paycheck) (payroll.Paycheck, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO paychecks (employee_id, gross_pay, bonus, tax_deduction, insurance_deduction,
			net_pay, pay_date, status, strategy_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + paycheckColumns

	created, err := scanPaycheck(q.QueryRow(ctx, query,
		paycheck.EmployeeID, paycheck.GrossPay, paycheck.Bonus, paycheck.TaxDeduction,
		paycheck.InsuranceDeduction, paycheck.NetPay, paycheck.PayDate, paycheck.Status,
		paycheck.StrategyName,
	))
	if err != nil {
		return payroll.Paycheck{}, fmt.Errorf("failed to create paycheck: %w", err)
	}

	return created, nil
}

func (r *paycheckRepository) GetByID(ctx context.Context, id int64) (payroll.Paycheck, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paycheckColumns + ` FROM paychecks WHERE id = $1`

	p, err := scanPaycheck(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Paycheck{}, payroll.ErrPaycheckNotFound
		}
		return payroll.Paycheck{}, fmt.Errorf("failed to get paycheck: %w", err)
	}

	return p, nil
}

func (r *paycheckRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]payroll.Paycheck, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paycheckColumns + ` FROM paychecks WHERE employee_id = $1 ORDER BY pay_date DESC, id DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list paychecks: %w", err)
	}
	defer rows.Close()

	var paychecks []payroll.Paycheck
	for rows.Next() {
		p, err := scanPaycheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan paycheck: %w", err)
		}
		paychecks = append(paychecks, p)
	}

	return paychecks, rows.Err()
}

// UpdateAmounts only touches rows still in a mutable status; a locked row
// yields zero affected rows and surfaces as ErrPaycheckLocked.
func (r *paycheckRepository) UpdateAmounts(ctx context.Context, p payroll.Paycheck) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE paychecks SET
			gross_pay = $2,
			bonus = $3,
			tax_deduction = $4,
			insurance_deduction = $5,
			net_pay = $6,
			updated_at = NOW()
		WHERE id = $1 AND status IN ('draft', 'pending')
	`

	tag, err := q.Exec(ctx, query, p.ID, p.GrossPay, p.Bonus, p.TaxDeduction, p.InsuranceDeduction, p.NetPay)
	if err != nil {
		return fmt.Errorf("failed to update paycheck amounts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, p.ID); getErr != nil {
			return getErr
		}
		return payroll.ErrPaycheckLocked
	}

	return nil
}

// UpdateStatus is the compare-and-swap transition: the row moves to next only
// if it still holds the expected status, so two concurrent transitions cannot
// both win.
func (r *paycheckRepository) UpdateStatus(ctx context.Context, id int64, expected, next payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE paychecks SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	tag, err := q.Exec(ctx, query, id, expected, next)
	if err != nil {
		return fmt.Errorf("failed to update paycheck status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return payroll.ErrStatusConflict
	}

	return nil
}

func (r *paycheckRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM paychecks WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return fmt.Errorf("failed to delete paycheck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return payroll.ErrPaycheckLocked
	}

	return nil
}
