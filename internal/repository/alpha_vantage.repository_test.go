package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockdash/internal/domain"
	"stockdash/pkg/alphavantage"

	"github.com/stretchr/testify/require"
)

func Test_alphaVantageRepositoryHandler_GetDailyPrices(t *testing.T) {
	ctx := context.Background()

	newRepository := func(t *testing.T, status int, body string) MarketDataRepository {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
		t.Cleanup(server.Close)
		return NewAlphaVantageRepository(alphavantage.NewClient(server.Client(), "key", server.URL, "compact"))
	}

	t.Run("success", func(t *testing.T) {
		repo := newRepository(t, http.StatusOK, `{"Time Series (Daily)": {
			"2024-01-03": {"4. close": "99.0000"},
			"2024-01-02": {"4. close": "110.0000"},
			"2024-01-01": {"4. close": "100.0000"}
		}}`)

		series, err := repo.GetDailyPrices(ctx, "ICLN")
		require.NoError(t, err)
		require.Equal(t, "ICLN", series.Symbol)
		require.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, series.Dates)
		require.Equal(t, []float64{99, 110, 100}, series.Prices)
	})

	t.Run("api failure", func(t *testing.T) {
		repo := newRepository(t, http.StatusOK, `{"Error Message": "Invalid API call."}`)

		_, err := repo.GetDailyPrices(ctx, "NOPE")
		require.ErrorIs(t, err, domain.ErrFetch)
		require.ErrorIs(t, err, domain.ErrUnknownSymbol)
		require.ErrorContains(t, err, "Invalid API call.")
	})

	t.Run("throttled", func(t *testing.T) {
		repo := newRepository(t, http.StatusOK, `{"Note": "Thank you for using Alpha Vantage!"}`)

		_, err := repo.GetDailyPrices(ctx, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
		require.NotErrorIs(t, err, domain.ErrUnknownSymbol)
	})

	t.Run("transport failure", func(t *testing.T) {
		repo := newRepository(t, http.StatusBadGateway, "bad gateway")

		_, err := repo.GetDailyPrices(ctx, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
	})
}
