package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlatRate_RateBounds(t *testing.T) {
	_, err := NewFlatRate("negative", decimal.NewFromFloat(-0.01))
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = NewFlatRate("too-high", decimal.NewFromFloat(1.01))
	assert.ErrorIs(t, err, ErrInvalidRate)

	// Both ends of [0, 1] are legal.
	_, err = NewFlatRate("zero", decimal.Zero)
	assert.NoError(t, err)
	_, err = NewFlatRate("full", decimal.NewFromInt(1))
	assert.NoError(t, err)
}

func TestFlatRate_CalculateTax(t *testing.T) {
	strategy, err := NewFlatRate("flat-15", decimal.NewFromFloat(0.15))
	require.NoError(t, err)

	tax, err := strategy.CalculateTax(decimal.NewFromInt(50000))

	assert.NoError(t, err)
	assert.True(t, tax.Equal(decimal.NewFromInt(7500)), "got %s", tax)
}

func TestFlatRate_CalculateTax_NegativeGross(t *testing.T) {
	strategy, err := NewFlatRate("flat-15", decimal.NewFromFloat(0.15))
	require.NoError(t, err)

	_, err = strategy.CalculateTax(decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFlatRate_CalculateTax_Deterministic(t *testing.T) {
	strategy, err := NewFlatRate("flat-21", decimal.NewFromFloat(0.21))
	require.NoError(t, err)

	gross := decimal.NewFromFloat(1234.56)
	first, err := strategy.CalculateTax(gross)
	require.NoError(t, err)
	second, err := strategy.CalculateTax(gross)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}
