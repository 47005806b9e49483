package pricer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banachtech/binomial/lattice"
)

func TestSwaption(t *testing.T) {
	t.Run("ThreeIntoSixWorkedExample", func(t *testing.T) {
		got, err := Swaption(0.0, 5.0, 6.0, 3, 6, 1.25, 0.9)
		require.NoError(t, err)
		require.InDelta(t, 0.06197180915914936, got, 1e-9)
	})

	t.Run("ImmediateExpiryEqualsSwapFloor", func(t *testing.T) {
		// expiry at the root: option value is the positive part of the
		// per-unit swap value
		swaption, err := Swaption(0.0, 5.0, 6.0, 0, 6, 1.25, 0.9)
		require.NoError(t, err)
		swap, err := Swap(1.0, 5.0, 6.0, 6, 1.25, 0.9)
		require.NoError(t, err)
		require.InDelta(t, math.Max(0.0, swap), swaption, 1e-12)
	})

	t.Run("NonNegative", func(t *testing.T) {
		got, err := Swaption(0.0, 8.0, 6.0, 2, 6, 1.25, 0.9)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0.0)
	})

	t.Run("DeepOutOfMoneyStrike", func(t *testing.T) {
		// strike far above any attainable per-unit swap value
		got, err := Swaption(1000.0, 5.0, 6.0, 3, 6, 1.25, 0.9)
		require.NoError(t, err)
		require.Equal(t, 0.0, got)
	})

	t.Run("OptionalityHasValue", func(t *testing.T) {
		// with a choice at expiry, the swaption is worth at least the
		// deferred swap value it can exercise into
		swaption, err := Swaption(0.0, 5.0, 6.0, 3, 6, 1.25, 0.9)
		require.NoError(t, err)
		require.Greater(t, swaption, 0.0)
	})

	t.Run("ExpiryOutsideTenor", func(t *testing.T) {
		_, err := Swaption(0.0, 5.0, 6.0, 6, 6, 1.25, 0.9)
		require.ErrorIs(t, err, lattice.ErrInvalidArgument)
		_, err = Swaption(0.0, 5.0, 6.0, -1, 6, 1.25, 0.9)
		require.ErrorIs(t, err, lattice.ErrInvalidArgument)
	})

	t.Run("NoPeriods", func(t *testing.T) {
		_, err := Swaption(0.0, 5.0, 6.0, 0, 0, 1.25, 0.9)
		require.ErrorIs(t, err, lattice.ErrInvalidArgument)
	})
}
