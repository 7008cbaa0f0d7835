package repository

import (
	"context"
	"fmt"
	"time"

	"stockdash/internal/domain"
	"stockdash/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaPriceRepositoryHandler struct {
	MdClient *marketdata.Client
	Lookback time.Duration
}

// NewAlpacaPriceRepository reads daily bars from the Alpaca market data
// API. An empty dataEndpoint uses the SDK default.
func NewAlpacaPriceRepository(apiKey, apiSecret, dataEndpoint string) MarketDataRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   dataEndpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaPriceRepositoryHandler{
		MdClient: mdClient,
		Lookback: 400 * 24 * time.Hour,
	}
}

func (h alpacaPriceRepositoryHandler) Name() string { return "alpaca" }

func (h alpacaPriceRepositoryHandler) GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	log := logger.FromContext(ctx)

	end := time.Now()
	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Start:      end.Add(-h.Lookback),
		End:        end,
		Adjustment: marketdata.Raw,
	})
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
	}

	prices := make([]domain.AssetPrice, 0, len(bars))
	for _, bar := range bars {
		if bar.Close <= 0 {
			log.Warnf("skipping non-positive close for %s on %s", symbol, bar.Timestamp.Format(time.DateOnly))
			continue
		}
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   bar.Timestamp.UTC(),
			Price:  bar.Close,
		})
	}

	return domain.NewPriceSeries(symbol, prices), nil
}
