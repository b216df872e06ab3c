package tax

import "github.com/shopspring/decimal"

// Strategy maps a gross pay amount to a tax amount. Implementations must be
// pure: the same gross pay always yields the same tax, and the result stays
// within [0, grossPay]. Payroll audits rely on recomputing past figures.
type Strategy interface {
	Name() string
	CalculateTax(grossPay decimal.Decimal) (decimal.Decimal, error)
}

type flatRateStrategy struct {
	name string
	rate decimal.Decimal
}

// NewFlatRate returns a strategy that taxes gross pay at a fixed rate.
// The rate must lie in [0, 1]; anything else could produce a tax below zero
// or above gross pay and is rejected here rather than at calculation time.
func NewFlatRate(name string, rate decimal.Decimal) (Strategy, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidRate
	}
	return &flatRateStrategy{name: name, rate: rate}, nil
}

func (s *flatRateStrategy) Name() string {
	return s.name
}

func (s *flatRateStrategy) CalculateTax(grossPay decimal.Decimal) (decimal.Decimal, error) {
	if grossPay.IsNegative() {
		return decimal.Zero, ErrInvalidInput
	}
	return grossPay.Mul(s.rate), nil
}
