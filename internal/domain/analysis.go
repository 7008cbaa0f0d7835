package domain

import "time"

// FilteredSeries is a price or return series restricted to a single
// calendar year, with the parsed date of every kept value.
type FilteredSeries struct {
	Dates  []time.Time `json:"dates"`
	Values []float64   `json:"values"`
}

func (f FilteredSeries) Len() int {
	return len(f.Values)
}

// SeriesRow is one line of a series exported as CSV.
type SeriesRow struct {
	Date  string  `csv:"date"`
	Value float64 `csv:"value"`
}

func (f FilteredSeries) Rows() []SeriesRow {
	rows := make([]SeriesRow, 0, f.Len())
	for i, v := range f.Values {
		rows = append(rows, SeriesRow{
			Date:  f.Dates[i].Format(time.DateOnly),
			Value: v,
		})
	}
	return rows
}

// Analysis is everything the dashboard shows for one symbol.
type Analysis struct {
	Symbol             string         `json:"symbol"`
	Year               int            `json:"year"`
	RiskFreeRate       float64        `json:"riskFreeRate"`
	SharpeRatio        Ratio          `json:"sharpeRatio"`
	AnnualizedSharpe   Ratio          `json:"annualizedSharpeRatio"`
	NumPrices          int            `json:"numPrices"`
	Prices             FilteredSeries `json:"prices"`
	Returns            FilteredSeries `json:"returns"`
	ReturnsError       string         `json:"returnsError,omitempty"`
	ChronologicalOrder bool           `json:"chronologicalOrder"`
}

// HasReturnsChart is false when the returns series failed its alignment
// check and must not be rendered.
func (a Analysis) HasReturnsChart() bool {
	return a.ReturnsError == ""
}
