package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockdash/internal/domain"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

type guardedMarketDataRepositoryHandler struct {
	Inner   MarketDataRepository
	Limiter *rate.Limiter
	Breaker *gobreaker.CircuitBreaker
}

// NewGuardedMarketDataRepository throttles calls to inner to
// requestsPerMinute and stops calling it for a while after repeated
// failures. Nothing is retried. requestsPerMinute <= 0 disables
// throttling.
func NewGuardedMarketDataRepository(inner MarketDataRepository, requestsPerMinute int) MarketDataRepository {
	limit := rate.Inf
	burst := 1
	if requestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
		burst = requestsPerMinute
	}

	settings := gobreaker.Settings{
		Name:     inner.Name(),
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a cancelled request or a bad ticker says nothing about the provider
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, domain.ErrUnknownSymbol)
		},
	}

	return guardedMarketDataRepositoryHandler{
		Inner:   inner,
		Limiter: rate.NewLimiter(limit, burst),
		Breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (h guardedMarketDataRepositoryHandler) Name() string { return h.Inner.Name() }

func (h guardedMarketDataRepositoryHandler) GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	if err := h.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w for %s: rate limit: %w", domain.ErrFetch, symbol, err)
	}

	out, err := h.Breaker.Execute(func() (interface{}, error) {
		return h.Inner.GetDailyPrices(ctx, symbol)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w for %s: %s is unavailable: %w", domain.ErrFetch, symbol, h.Inner.Name(), err)
	}
	if err != nil {
		return nil, err
	}

	return out.(*domain.PriceSeries), nil
}
