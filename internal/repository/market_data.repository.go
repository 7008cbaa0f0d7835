package repository

import (
	"context"

	"stockdash/internal/domain"
)

//go:generate mockgen -source=market_data.repository.go -destination=mocks/mock_market_data.repository.go -package=mock_repository

// MarketDataRepository loads daily closing prices for a symbol from a
// market data provider. The returned series has index-aligned Dates and
// Prices; a symbol with no data yields an empty series, not an error.
type MarketDataRepository interface {
	GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error)
	Name() string
}
