package payroll

import "context"

type PayrollService interface {
	ComputePaycheck(ctx context.Context, req ComputePaycheckRequest) (PaycheckResponse, error)
	GetPaycheck(ctx context.Context, id int64) (PaycheckResponse, error)
	ListPaychecks(ctx context.Context, employeeID int64) ([]PaycheckResponse, error)
	UpdatePaycheck(ctx context.Context, req UpdatePaycheckRequest) (PaycheckResponse, error)
	TransitionPaycheck(ctx context.Context, req TransitionRequest) (PaycheckResponse, error)
	VoidPaycheck(ctx context.Context, id int64) (PaycheckResponse, error)
	DeletePaycheck(ctx context.Context, id int64) error
	ListStrategyNames(ctx context.Context) []string
}
