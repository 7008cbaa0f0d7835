package calculator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestComputeDailyReturns(t *testing.T) {
	t.Run("one fewer return than prices", func(t *testing.T) {
		prices := []float64{100, 110, 99, 120.5, 118}
		returns := ComputeDailyReturns(prices)

		require.Len(t, returns, len(prices)-1)
		for i := range returns {
			require.Equal(t, (prices[i+1]-prices[i])/prices[i], returns[i])
		}
	})

	t.Run("empty and single price", func(t *testing.T) {
		require.Empty(t, ComputeDailyReturns(nil))
		require.Empty(t, ComputeDailyReturns([]float64{}))
		require.Empty(t, ComputeDailyReturns([]float64{42}))
	})

	t.Run("hand computed", func(t *testing.T) {
		returns := ComputeDailyReturns([]float64{100, 110, 99})
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]float64{0.1, -0.1},
				returns,
				cmpopts.EquateApprox(0, 1e-12),
			),
		)
	})
}

func TestComputeSharpeRatio(t *testing.T) {
	t.Run("zero variance", func(t *testing.T) {
		ratio := ComputeSharpeRatio([]float64{0.01, 0.01, 0.01}, 0)
		require.True(t, math.IsInf(ratio, 0) || math.IsNaN(ratio))
	})

	t.Run("zero variance and zero mean", func(t *testing.T) {
		ratio := ComputeSharpeRatio([]float64{0.02, 0.02}, 0.02)
		require.True(t, math.IsNaN(ratio))
	})

	t.Run("empty returns", func(t *testing.T) {
		require.True(t, math.IsNaN(ComputeSharpeRatio([]float64{}, 0)))
		require.True(t, math.IsNaN(ComputeSharpeRatio(nil, 0.01)))
	})

	t.Run("zero mean is not degenerate", func(t *testing.T) {
		ratio := ComputeSharpeRatio([]float64{0.1, -0.1}, 0)
		require.InDelta(t, 0, ratio, 1e-12)
	})

	t.Run("population stdev", func(t *testing.T) {
		// mean 0.02, population stdev 0.01
		ratio := ComputeSharpeRatio([]float64{0.01, 0.03}, 0)
		require.InDelta(t, 2, ratio, 1e-9)
	})

	t.Run("risk free rate is subtracted", func(t *testing.T) {
		// excess returns 0.0 and 0.02, mean 0.01, stdev 0.01
		ratio := ComputeSharpeRatio([]float64{0.01, 0.03}, 0.01)
		require.InDelta(t, 1, ratio, 1e-9)
	})

	t.Run("single return", func(t *testing.T) {
		ratio := ComputeSharpeRatio([]float64{0.05}, 0)
		require.True(t, math.IsInf(ratio, 1))
	})
}

func TestAnnualizeSharpeRatio(t *testing.T) {
	require.InDelta(t, math.Sqrt(252), AnnualizeSharpeRatio(1), 1e-12)
	require.True(t, math.IsNaN(AnnualizeSharpeRatio(math.NaN())))
}
