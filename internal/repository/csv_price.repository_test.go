package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"stockdash/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeCsv(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_csvPriceRepositoryHandler_GetDailyPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by symbol in file order", func(t *testing.T) {
		path := writeCsv(t, "date,symbol,price\n2024-01-03,ICLN,12\n2024-01-02,SPY,470\n2024-01-02,icln,11\n")

		series, err := NewCsvPriceRepository(path).GetDailyPrices(ctx, "ICLN")
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				&domain.PriceSeries{
					Symbol: "ICLN",
					Dates:  []string{"2024-01-03", "2024-01-02"},
					Prices: []float64{12, 11},
				},
				series,
			),
		)
	})

	t.Run("unknown symbol is empty", func(t *testing.T) {
		path := writeCsv(t, "date,symbol,price\n2024-01-03,ICLN,12\n")

		series, err := NewCsvPriceRepository(path).GetDailyPrices(ctx, "AAPL")
		require.NoError(t, err)
		require.Equal(t, 0, series.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCsvPriceRepository(filepath.Join(t.TempDir(), "nope.csv")).GetDailyPrices(ctx, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
	})

	t.Run("non positive price", func(t *testing.T) {
		path := writeCsv(t, "date,symbol,price\n2024-01-03,ICLN,0\n")

		_, err := NewCsvPriceRepository(path).GetDailyPrices(ctx, "ICLN")
		require.ErrorIs(t, err, domain.ErrFetch)
	})
}
