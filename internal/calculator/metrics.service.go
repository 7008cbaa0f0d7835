package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252

// ComputeDailyReturns converts closing prices into fractional day-over-day
// changes. The result has one fewer element than prices, and is empty when
// there are fewer than two prices. All prices are expected to be > 0.
func ComputeDailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		yesterday := prices[i-1]
		returns = append(returns, (prices[i]-yesterday)/yesterday)
	}
	return returns
}

// ComputeSharpeRatio is the mean excess return divided by the population
// standard deviation of excess returns. It is NaN for empty input and
// NaN or ±Inf when every excess return is the same.
func ComputeSharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	excessReturns := make([]float64, len(returns))
	for i, r := range returns {
		excessReturns[i] = r - riskFreeRate
	}

	mean, err := stats.Mean(excessReturns)
	if err != nil {
		return math.NaN()
	}
	stdev, err := stats.StandardDeviationPopulation(excessReturns)
	if err != nil {
		return math.NaN()
	}
	// rounding in the variance sum can leave a tiny non-zero stdev for
	// identical inputs
	if allEqual(excessReturns) {
		stdev = 0
	}

	return mean / stdev
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// AnnualizeSharpeRatio scales a daily ratio by the square root of the
// number of trading days in a year.
func AnnualizeSharpeRatio(daily float64) float64 {
	return daily * math.Sqrt(tradingDaysPerYear)
}
