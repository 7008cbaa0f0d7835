package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stockdash/internal/calculator"
	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/repository"
)

//go:generate mockgen -source=analysis.service.go -destination=mocks/mock_analysis.service.go -package=mock_service

// AnalysisService turns a symbol into everything the dashboard shows:
// the Sharpe ratio over all fetched prices, and this year's prices and
// daily returns.
type AnalysisService interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*domain.Analysis, error)
}

type AnalyzeInput struct {
	Symbol       string
	RiskFreeRate float64
}

type analysisServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	// SortChronologically orders prices oldest first before computing
	// returns. Without it, returns follow the provider's order.
	SortChronologically bool
	// Now is read once per filter pass; nil means time.Now.
	Now func() time.Time
}

func NewAnalysisService(
	marketDataRepository repository.MarketDataRepository,
	sortChronologically bool,
) AnalysisService {
	return analysisServiceHandler{
		MarketDataRepository: marketDataRepository,
		SortChronologically:  sortChronologically,
		Now:                  time.Now,
	}
}

func (h analysisServiceHandler) currentYear() int {
	if h.Now == nil {
		return time.Now().Year()
	}
	return h.Now().Year()
}

func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (h analysisServiceHandler) Analyze(ctx context.Context, in AnalyzeInput) (*domain.Analysis, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetPerformanceProfile(ctx)

	symbol := NormalizeSymbol(in.Symbol)
	if symbol == "" {
		return nil, domain.ErrMissingSymbol
	}

	series, err := h.MarketDataRepository.GetDailyPrices(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if series == nil {
		series = &domain.PriceSeries{Symbol: symbol}
	}
	if len(series.Dates) != len(series.Prices) {
		return nil, fmt.Errorf("%w: %s returned %d dates and %d prices for %s", domain.ErrFetch, h.MarketDataRepository.Name(), len(series.Dates), len(series.Prices), symbol)
	}
	profile.Add("fetchPrices")

	dates, prices := series.Dates, series.Prices
	if h.SortChronologically {
		dates, prices, err = sortByDate(dates, prices)
		if err != nil {
			return nil, err
		}
	}

	returns := calculator.ComputeDailyReturns(prices)
	sharpeRatio := calculator.ComputeSharpeRatio(returns, in.RiskFreeRate)
	profile.Add("computeMetrics")

	// each series is filtered against its own reading of the clock, so a
	// pass that straddles New Year can disagree with the others
	year := h.currentYear()
	priceDates, filteredPrices, err := calculator.FilterDatesToYear(dates, prices, year)
	if err != nil {
		return nil, fmt.Errorf("failed to filter prices: %w", err)
	}

	// returns[i] belongs to the date of the price that produced it
	returnDateStrings := []string{}
	if len(dates) > 0 {
		returnDateStrings = dates[1:]
	}
	returnDates, _, err := calculator.FilterDatesToYear(returnDateStrings, returnDateStrings, h.currentYear())
	if err != nil {
		return nil, fmt.Errorf("failed to filter return dates: %w", err)
	}
	_, filteredReturns, err := calculator.FilterDatesToYear(returnDateStrings, returns, h.currentYear())
	if err != nil {
		return nil, fmt.Errorf("failed to filter returns: %w", err)
	}
	returnSeries, returnsErr := alignReturns(returnDates, filteredReturns)
	profile.Add("filterCurrentYear")

	out := &domain.Analysis{
		Symbol:           symbol,
		Year:             year,
		RiskFreeRate:     in.RiskFreeRate,
		SharpeRatio:      domain.Ratio(sharpeRatio),
		AnnualizedSharpe: domain.Ratio(calculator.AnnualizeSharpeRatio(sharpeRatio)),
		NumPrices:        len(prices),
		Prices: domain.FilteredSeries{
			Dates:  priceDates,
			Values: filteredPrices,
		},
		Returns:            returnSeries,
		ChronologicalOrder: h.SortChronologically,
	}
	if returnsErr != nil {
		log.Errorw("dropping returns chart", "symbol", symbol, "error", returnsErr)
		out.ReturnsError = domain.AlignmentMismatchMessage
	}
	if !out.SharpeRatio.IsFinite() {
		log.Warnw("degenerate sharpe ratio", "symbol", symbol, "numReturns", len(returns), "sharpeRatio", out.SharpeRatio.String())
	}

	profile.End()
	log.Infow(fmt.Sprintf("analyzed %s", symbol), profile.Fields()...)

	return out, nil
}

// alignReturns pairs filtered return dates with filtered return values,
// refusing to do so when the two filters kept a different number of
// entries.
func alignReturns(dates []time.Time, returns []float64) (domain.FilteredSeries, error) {
	if len(dates) != len(returns) {
		return domain.FilteredSeries{
			Dates:  []time.Time{},
			Values: []float64{},
		}, fmt.Errorf("%w: %d dates, %d returns", domain.ErrAlignmentMismatch, len(dates), len(returns))
	}
	return domain.FilteredSeries{
		Dates:  dates,
		Values: returns,
	}, nil
}

// sortByDate orders dates and prices oldest first, keeping the relative
// order of duplicate dates.
func sortByDate(dates []string, prices []float64) ([]string, []float64, error) {
	parsed := make([]time.Time, len(dates))
	for i, d := range dates {
		t, err := calculator.ParseDate(d)
		if err != nil {
			return nil, nil, err
		}
		parsed[i] = t
	}

	idx := make([]int, len(dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return parsed[idx[i]].Before(parsed[idx[j]])
	})

	sortedDates := make([]string, len(dates))
	sortedPrices := make([]float64, len(prices))
	for i, j := range idx {
		sortedDates[i] = dates[j]
		sortedPrices[i] = prices[j]
	}
	return sortedDates, sortedPrices, nil
}
