package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrPaycheckNotFound        = errors.New("paycheck not found")
	ErrPaycheckLocked          = errors.New("paycheck is locked and can no longer be modified")
	ErrIllegalStatusTransition = errors.New("illegal paycheck status transition")
	ErrStatusConflict          = errors.New("paycheck status changed concurrently")
	ErrInvalidInput            = errors.New("monetary amounts must be non-negative")
)

// TransitionError names the current and attempted status of a rejected
// transition. errors.Is(err, ErrIllegalStatusTransition) matches it.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal paycheck status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalStatusTransition
}
