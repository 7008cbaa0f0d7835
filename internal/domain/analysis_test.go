package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFilteredSeries_Rows(t *testing.T) {
	series := FilteredSeries{
		Dates: []time.Time{
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		Values: []float64{0.1, -0.05},
	}

	require.Equal(
		t,
		"",
		cmp.Diff(
			[]SeriesRow{
				{Date: "2024-01-02", Value: 0.1},
				{Date: "2024-01-03", Value: -0.05},
			},
			series.Rows(),
		),
	)
	require.Empty(t, FilteredSeries{}.Rows())
}
