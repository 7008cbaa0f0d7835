package repository

import (
	"context"
	"fmt"
	"time"

	"stockdash/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooPriceRepositoryHandler struct {
	Lookback time.Duration
}

// NewYahooPriceRepository reads daily bars from the Yahoo Finance chart
// API, covering lookback up to now.
func NewYahooPriceRepository(lookback time.Duration) MarketDataRepository {
	if lookback <= 0 {
		lookback = 400 * 24 * time.Hour
	}
	return yahooPriceRepositoryHandler{
		Lookback: lookback,
	}
}

func (h yahooPriceRepositoryHandler) Name() string { return "yahoo" }

func (h yahooPriceRepositoryHandler) GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	now := time.Now()
	start := now.Add(-h.Lookback)
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	// the crumb lookup inside chart.Get does not honour ctx
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
		}
		bar := iter.Bar()
		// yahoo reports holidays as empty bars
		if !bar.Close.IsPositive() {
			continue
		}
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price:  bar.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
	}

	return domain.NewPriceSeries(symbol, prices), nil
}
