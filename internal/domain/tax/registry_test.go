package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	strategy, err := NewFlatRate("flat-15", decimal.NewFromFloat(0.15))
	require.NoError(t, err)

	require.NoError(t, registry.Register("flat-15", strategy))

	resolved, err := registry.Resolve("flat-15")
	assert.NoError(t, err)
	assert.Equal(t, "flat-15", resolved.Name())
}

func TestRegistry_Register_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	strategy, err := NewFlatRate("flat-15", decimal.NewFromFloat(0.15))
	require.NoError(t, err)
	require.NoError(t, registry.Register("flat-15", strategy))

	err = registry.Register("flat-15", strategy)

	assert.ErrorIs(t, err, ErrDuplicateStrategyName)
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("does-not-exist")

	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRegistry_ListNames_Sorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"flat-21", "flat-05", "flat-15"} {
		strategy, err := NewFlatRate(name, decimal.NewFromFloat(0.1))
		require.NoError(t, err)
		require.NoError(t, registry.Register(name, strategy))
	}

	assert.Equal(t, []string{"flat-05", "flat-15", "flat-21"}, registry.ListNames())
}
