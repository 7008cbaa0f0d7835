package domain

import "time"

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// PriceSeries is a symbol's daily closes as received from a market data
// provider. Dates[i] is the trading day of Prices[i], formatted YYYY-MM-DD.
type PriceSeries struct {
	Symbol string
	Dates  []string
	Prices []float64
}

func (p PriceSeries) Len() int {
	return len(p.Prices)
}

// NewPriceSeries flattens provider rows into a series, keeping their order.
func NewPriceSeries(symbol string, prices []AssetPrice) *PriceSeries {
	out := &PriceSeries{
		Symbol: symbol,
		Dates:  make([]string, 0, len(prices)),
		Prices: make([]float64, 0, len(prices)),
	}
	for _, p := range prices {
		out.Dates = append(out.Dates, p.Date.Format(time.DateOnly))
		out.Prices = append(out.Prices, p.Price)
	}
	return out
}
