package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"stockdash/internal/domain"

	"github.com/gocarina/gocsv"
)

// CsvPriceRow is one line of a price file: date,symbol,price.
type CsvPriceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type csvPriceRepositoryHandler struct {
	Path string
}

// NewCsvPriceRepository serves prices from a local CSV file, for running
// the dashboard without a market data account.
func NewCsvPriceRepository(path string) MarketDataRepository {
	return csvPriceRepositoryHandler{
		Path: path,
	}
}

func (h csvPriceRepositoryHandler) Name() string { return "csv" }

func (h csvPriceRepositoryHandler) GetDailyPrices(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrFetch, symbol, err)
	}
	defer f.Close()

	rows := []CsvPriceRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("%w for %s: failed to read %s: %w", domain.ErrFetch, symbol, h.Path, err)
	}

	out := &domain.PriceSeries{
		Symbol: symbol,
		Dates:  []string{},
		Prices: []float64{},
	}
	for _, row := range rows {
		if !strings.EqualFold(row.Symbol, symbol) {
			continue
		}
		if row.Price <= 0 {
			return nil, fmt.Errorf("%w for %s: price on %s is not positive", domain.ErrFetch, symbol, row.Date)
		}
		out.Dates = append(out.Dates, row.Date)
		out.Prices = append(out.Prices, row.Price)
	}

	return out, nil
}
