package repository_test

import (
	"context"
	"fmt"
	"testing"

	"stockdash/internal/domain"
	"stockdash/internal/repository"
	mock_repository "stockdash/internal/repository/mocks"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuardedMarketDataRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_repository.NewMockMarketDataRepository(ctrl)
		inner.EXPECT().Name().Return("mock").AnyTimes()

		series := &domain.PriceSeries{Symbol: "ICLN", Dates: []string{"2024-01-02"}, Prices: []float64{10}}
		inner.EXPECT().GetDailyPrices(ctx, "ICLN").Return(series, nil)

		repo := repository.NewGuardedMarketDataRepository(inner, 0)
		out, err := repo.GetDailyPrices(ctx, "ICLN")
		require.NoError(t, err)
		require.Same(t, series, out)
		require.Equal(t, "mock", repo.Name())
	})

	t.Run("stops calling after repeated failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_repository.NewMockMarketDataRepository(ctrl)
		inner.EXPECT().Name().Return("mock").AnyTimes()
		inner.EXPECT().
			GetDailyPrices(ctx, "ICLN").
			Return(nil, fmt.Errorf("%w: boom", domain.ErrFetch)).
			Times(5)

		repo := repository.NewGuardedMarketDataRepository(inner, 0)
		for i := 0; i < 5; i++ {
			_, err := repo.GetDailyPrices(ctx, "ICLN")
			require.ErrorIs(t, err, domain.ErrFetch)
		}

		_, err := repo.GetDailyPrices(ctx, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
		require.ErrorIs(t, err, gobreaker.ErrOpenState)
	})

	t.Run("unknown symbols do not open the breaker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_repository.NewMockMarketDataRepository(ctrl)
		inner.EXPECT().Name().Return("mock").AnyTimes()
		inner.EXPECT().
			GetDailyPrices(ctx, "NOPE").
			Return(nil, fmt.Errorf("%w NOPE: Invalid API call.", domain.ErrUnknownSymbol)).
			Times(6)
		series := &domain.PriceSeries{Symbol: "ICLN", Dates: []string{"2024-01-02"}, Prices: []float64{10}}
		inner.EXPECT().GetDailyPrices(ctx, "ICLN").Return(series, nil)

		repo := repository.NewGuardedMarketDataRepository(inner, 0)
		for i := 0; i < 6; i++ {
			_, err := repo.GetDailyPrices(ctx, "NOPE")
			require.ErrorIs(t, err, domain.ErrUnknownSymbol)
			require.NotErrorIs(t, err, gobreaker.ErrOpenState)
		}

		out, err := repo.GetDailyPrices(ctx, "ICLN")
		require.NoError(t, err)
		require.Same(t, series, out)
	})

	t.Run("cancelled while throttled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_repository.NewMockMarketDataRepository(ctrl)
		inner.EXPECT().Name().Return("mock").AnyTimes()
		inner.EXPECT().GetDailyPrices(gomock.Any(), "ICLN").Return(&domain.PriceSeries{}, nil).Times(1)

		repo := repository.NewGuardedMarketDataRepository(inner, 1)
		_, err := repo.GetDailyPrices(ctx, "ICLN")
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = repo.GetDailyPrices(cancelled, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
	})
}
