package repository

import (
	"context"
	"fmt"

	"stockdash/internal/domain"
	"stockdash/pkg/alphavantage"
)

type alphaVantageRepositoryHandler struct {
	Client alphavantage.Client
}

func NewAlphaVantageRepository(client alphavantage.Client) MarketDataRepository {
	return alphaVantageRepositoryHandler{
		Client: client,
	}
}

func (h alphaVantageRepositoryHandler) Name() string { return "alphavantage" }

func (h alphaVantageRepositoryHandler) GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	result, err := h.Client.GetDailySeries(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
	}

	switch r := result.(type) {
	case alphavantage.Failure:
		if r.Rejected {
			return nil, fmt.Errorf("%w %s: %s", domain.ErrUnknownSymbol, symbol, r.Reason)
		}
		return nil, fmt.Errorf("%w for %s: %s", domain.ErrFetch, symbol, r.Reason)
	case alphavantage.Success:
		out := &domain.PriceSeries{
			Symbol: symbol,
			Dates:  make([]string, 0, len(r.Closes)),
			Prices: make([]float64, 0, len(r.Closes)),
		}
		for _, c := range r.Closes {
			out.Dates = append(out.Dates, c.Date)
			out.Prices = append(out.Prices, c.Close.InexactFloat64())
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w for %s: unexpected result %T", domain.ErrFetch, symbol, result)
}
