package payroll

import "context"

// PaycheckRepository defines data access for paycheck records. UpdateStatus
// and UpdateAmounts carry the expected prior state so the database enforces
// the check-then-act atomically: a stale expectation yields zero affected
// rows and the repository reports the conflict instead of overwriting.
type PaycheckRepository interface {
	Create(ctx context.Context, paycheck Paycheck) (Paycheck, error)
	GetByID(ctx context.Context, id int64) (Paycheck, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Paycheck, error)

	// UpdateAmounts persists the monetary fields of p only while the stored
	// status is still draft or pending.
	UpdateAmounts(ctx context.Context, p Paycheck) error

	// UpdateStatus moves id from expected to next only if the stored status
	// still equals expected. Returns ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, id int64, expected, next Status) error

	// Delete removes id only while it is still a draft.
	Delete(ctx context.Context, id int64) error
}
