package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusVoided  Status = "voided"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusVoided:
		return true
	}
	return false
}

// transitions is the complete lifecycle table. A draft may go straight to
// paid, modeling an optional approval step. Voided has no outgoing edges,
// not even to itself.
var transitions = map[Status][]Status{
	StatusDraft:   {StatusPending, StatusPaid, StatusVoided},
	StatusPending: {StatusPaid, StatusVoided},
	StatusPaid:    {StatusVoided},
	StatusVoided:  {},
}

// CanTransitionTo reports whether the lifecycle table permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Paycheck is a single payroll computation record. Monetary fields freeze
// once the status reaches paid; voiding a paid paycheck flips the status for
// audit purposes without touching the original figures. The compensating
// negative entry a void implies is the caller's responsibility.
type Paycheck struct {
	ID                 int64
	EmployeeID         int64
	GrossPay           decimal.Decimal
	Bonus              *decimal.Decimal
	TaxDeduction       decimal.Decimal
	InsuranceDeduction decimal.Decimal
	NetPay             decimal.Decimal
	PayDate            time.Time
	Status             Status
	StrategyName       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Transition moves the paycheck to next if the lifecycle table allows it.
func (p *Paycheck) Transition(next Status) error {
	if !p.Status.CanTransitionTo(next) {
		return &TransitionError{From: p.Status, To: next}
	}
	p.Status = next
	return nil
}

// Mutable reports whether monetary fields may still change.
func (p *Paycheck) Mutable() bool {
	return p.Status == StatusDraft || p.Status == StatusPending
}

// Deletable reports whether the record may be physically removed. Anything
// past draft is retained for audit.
func (p *Paycheck) Deletable() bool {
	return p.Status == StatusDraft
}

func (p *Paycheck) ensureMutable() error {
	if !p.Mutable() {
		return ErrPaycheckLocked
	}
	return nil
}

// recalcNet derives net pay from the currently recorded figures:
// gross + bonus - tax - insurance. A negative net is kept as-is so
// downstream auditing can flag it.
func (p *Paycheck) recalcNet() {
	net := p.GrossPay
	if p.Bonus != nil {
		net = net.Add(*p.Bonus)
	}
	p.NetPay = net.Sub(p.TaxDeduction).Sub(p.InsuranceDeduction)
}
