package payroll

import (
	"testing"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator(t *testing.T) *Calculator {
	registry := tax.NewRegistry()
	for name, rate := range map[string]float64{
		"flat-15": 0.15,
		"flat-30": 0.30,
	} {
		strategy, err := tax.NewFlatRate(name, decimal.NewFromFloat(rate))
		require.NoError(t, err)
		require.NoError(t, registry.Register(name, strategy))
	}
	return NewCalculator(registry)
}

func TestCalculator_Compute(t *testing.T) {
	calc := testCalculator(t)
	payDate := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	p, err := calc.Compute(7, decimal.NewFromInt(50000), nil, "flat-15", decimal.NewFromInt(500), payDate)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.EmployeeID)
	assert.Equal(t, StatusDraft, p.Status)
	assert.Equal(t, "flat-15", p.StrategyName)
	assert.True(t, p.TaxDeduction.Equal(decimal.NewFromInt(7500)), "tax %s", p.TaxDeduction)
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(42000)), "net %s", p.NetPay)
}

func TestCalculator_Compute_WithBonus(t *testing.T) {
	calc := testCalculator(t)
	bonus := decimal.NewFromInt(1000)

	p, err := calc.Compute(7, decimal.NewFromInt(50000), &bonus, "flat-15", decimal.NewFromInt(500), time.Now())

	require.NoError(t, err)
	// Bonus raises net but is not taxed: 50000 + 1000 - 7500 - 500.
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(43000)), "net %s", p.NetPay)
}

func TestCalculator_Compute_NegativeInputs(t *testing.T) {
	calc := testCalculator(t)
	negBonus := decimal.NewFromInt(-1)

	_, err := calc.Compute(7, decimal.NewFromInt(-1), nil, "flat-15", decimal.Zero, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.Compute(7, decimal.NewFromInt(100), &negBonus, "flat-15", decimal.Zero, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.Compute(7, decimal.NewFromInt(100), nil, "flat-15", decimal.NewFromInt(-1), time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculator_Compute_UnknownStrategy(t *testing.T) {
	calc := testCalculator(t)

	_, err := calc.Compute(7, decimal.NewFromInt(100), nil, "progressive", decimal.Zero, time.Now())

	assert.ErrorIs(t, err, tax.ErrUnknownStrategy)
}

func TestCalculator_Compute_NegativeNetIsKept(t *testing.T) {
	calc := testCalculator(t)

	// Insurance exceeds what is left after tax.
	p, err := calc.Compute(7, decimal.NewFromInt(100), nil, "flat-30", decimal.NewFromInt(90), time.Now())

	require.NoError(t, err)
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(-20)), "net %s", p.NetPay)
}

func TestCalculator_SetGrossPay_RerunsStrategy(t *testing.T) {
	calc := testCalculator(t)
	p, err := calc.Compute(7, decimal.NewFromInt(50000), nil, "flat-15", decimal.NewFromInt(500), time.Now())
	require.NoError(t, err)

	require.NoError(t, calc.SetGrossPay(&p, decimal.NewFromInt(60000)))

	assert.True(t, p.TaxDeduction.Equal(decimal.NewFromInt(9000)), "tax %s", p.TaxDeduction)
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(50500)), "net %s", p.NetPay)
}

func TestCalculator_SetBonus_KeepsRecordedTax(t *testing.T) {
	calc := testCalculator(t)
	p, err := calc.Compute(7, decimal.NewFromInt(50000), nil, "flat-15", decimal.NewFromInt(500), time.Now())
	require.NoError(t, err)
	bonus := decimal.NewFromInt(2000)

	require.NoError(t, calc.SetBonus(&p, &bonus))

	assert.True(t, p.TaxDeduction.Equal(decimal.NewFromInt(7500)), "tax %s", p.TaxDeduction)
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(44000)), "net %s", p.NetPay)

	require.NoError(t, calc.SetBonus(&p, nil))
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(42000)), "net %s", p.NetPay)
}

func TestCalculator_Setters_RejectLockedPaycheck(t *testing.T) {
	calc := testCalculator(t)
	bonus := decimal.NewFromInt(10)

	for _, status := range []Status{StatusPaid, StatusVoided} {
		p := Paycheck{Status: status, StrategyName: "flat-15"}

		assert.ErrorIs(t, calc.SetGrossPay(&p, decimal.NewFromInt(1)), ErrPaycheckLocked)
		assert.ErrorIs(t, calc.SetBonus(&p, &bonus), ErrPaycheckLocked)
		assert.ErrorIs(t, calc.SetTaxDeduction(&p, decimal.NewFromInt(1)), ErrPaycheckLocked)
		assert.ErrorIs(t, calc.SetInsuranceDeduction(&p, decimal.NewFromInt(1)), ErrPaycheckLocked)
	}
}

func TestCalculator_SetTaxDeduction_Override(t *testing.T) {
	calc := testCalculator(t)
	p, err := calc.Compute(7, decimal.NewFromInt(50000), nil, "flat-15", decimal.NewFromInt(500), time.Now())
	require.NoError(t, err)

	require.NoError(t, calc.SetTaxDeduction(&p, decimal.NewFromInt(8000)))

	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(41500)), "net %s", p.NetPay)
}
