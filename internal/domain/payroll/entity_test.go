package payroll

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusDraft, false},
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusPaid, true},
		{StatusDraft, StatusVoided, true},
		{StatusPending, StatusDraft, false},
		{StatusPending, StatusPending, false},
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusVoided, true},
		{StatusPaid, StatusDraft, false},
		{StatusPaid, StatusPending, false},
		{StatusPaid, StatusPaid, false},
		{StatusPaid, StatusVoided, true},
		{StatusVoided, StatusDraft, false},
		{StatusVoided, StatusPending, false},
		{StatusVoided, StatusPaid, false},
		{StatusVoided, StatusVoided, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPaycheck_Transition_Illegal(t *testing.T) {
	p := &Paycheck{Status: StatusPaid}

	err := p.Transition(StatusPending)

	assert.ErrorIs(t, err, ErrIllegalStatusTransition)
	assert.Equal(t, StatusPaid, p.Status, "status must not change on a rejected transition")

	var transitionErr *TransitionError
	if assert.True(t, errors.As(err, &transitionErr)) {
		assert.Equal(t, StatusPaid, transitionErr.From)
		assert.Equal(t, StatusPending, transitionErr.To)
	}
}

func TestPaycheck_Transition_VoidedIsTerminal(t *testing.T) {
	p := &Paycheck{Status: StatusVoided}

	assert.ErrorIs(t, p.Transition(StatusVoided), ErrIllegalStatusTransition)
	assert.ErrorIs(t, p.Transition(StatusDraft), ErrIllegalStatusTransition)
}

func TestPaycheck_Mutable(t *testing.T) {
	assert.True(t, (&Paycheck{Status: StatusDraft}).Mutable())
	assert.True(t, (&Paycheck{Status: StatusPending}).Mutable())
	assert.False(t, (&Paycheck{Status: StatusPaid}).Mutable())
	assert.False(t, (&Paycheck{Status: StatusVoided}).Mutable())
}

func TestPaycheck_Deletable_OnlyDraft(t *testing.T) {
	assert.True(t, (&Paycheck{Status: StatusDraft}).Deletable())
	assert.False(t, (&Paycheck{Status: StatusPending}).Deletable())
	assert.False(t, (&Paycheck{Status: StatusPaid}).Deletable())
	assert.False(t, (&Paycheck{Status: StatusVoided}).Deletable())
}
