package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOrder_OverLimitOnly(t *testing.T) {
	t.Parallel()

	d := CheckOrder(Order{Symbol: "ASM300", Quantity: 2_000_000, Price: 1},
		DefaultLimits(), 5_000_000)

	assert.True(t, d.OverLimit)
	assert.False(t, d.InsufficientFunds)
	assert.False(t, d.Allowed())
	require.Len(t, d.Violations, 1)
	assert.Equal(t, "ORDER_OVER_LIMIT", d.Violations[0].Code)
}

func TestCheckOrder_InsufficientFundsOnly(t *testing.T) {
	t.Parallel()

	d := CheckOrder(Order{Symbol: "ASM300", Quantity: 10, Price: 1000},
		DefaultLimits(), 5000)

	assert.InDelta(t, 10000, d.OrderValue, 1e-9)
	assert.False(t, d.OverLimit)
	assert.True(t, d.InsufficientFunds)
	require.Len(t, d.Violations, 1)
	assert.Equal(t, "INSUFFICIENT_FUNDS", d.Violations[0].Code)
}

func TestCheckOrder_BothConditions(t *testing.T) {
	t.Parallel()

	// Both hold: both are surfaced, over-limit reported first.
	d := CheckOrder(Order{Symbol: "AF15", Quantity: 2_000_000, Price: 100},
		DefaultLimits(), 1000)

	assert.True(t, d.OverLimit)
	assert.True(t, d.InsufficientFunds)
	require.Len(t, d.Violations, 2)
	assert.Equal(t, "ORDER_OVER_LIMIT", d.Violations[0].Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", d.Violations[1].Code)
}

func TestCheckOrder_Allowed(t *testing.T) {
	t.Parallel()

	d := CheckOrder(Order{Symbol: "ASM300", Quantity: 10, Price: 100},
		DefaultLimits(), 5000)

	assert.True(t, d.Allowed())
	assert.Empty(t, d.Violations)
	assert.InDelta(t, 1000, d.OrderValue, 1e-9)
}

func TestCheckOrder_ExactBoundaries(t *testing.T) {
	t.Parallel()

	limits := DefaultLimits()

	// Exactly at the limit is not over it.
	d := CheckOrder(Order{Quantity: limits.MaxOrderSize, Price: 0.001},
		limits, 1_000_000)
	assert.False(t, d.OverLimit)

	// Spending the whole balance is not insufficient.
	d = CheckOrder(Order{Quantity: 10, Price: 100}, limits, 1000)
	assert.False(t, d.InsufficientFunds)
}

func TestDefaultLimits(t *testing.T) {
	t.Parallel()

	l := DefaultLimits()
	assert.InDelta(t, 1_000_000, l.MaxOrderSize, 1e-9)
	assert.Greater(t, l.MaxOrderSize, l.MinOrderSize)
	assert.Greater(t, l.MaxPositionSize, l.MaxOrderSize)
	assert.Greater(t, l.DailyVolumeLimit, l.MaxPositionSize)
}
