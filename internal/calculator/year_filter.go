package calculator

import (
	"fmt"
	"time"

	"stockdash/internal/domain"
)

// FilterToCurrentYear walks dates and values in lock-step and keeps the
// pairs whose date falls in the current calendar year. Dates must be
// formatted YYYY-MM-DD; the first one that is not aborts the filter.
// Callers are responsible for passing slices of equal length.
func FilterToCurrentYear[T any](dates []string, values []T) ([]time.Time, []T, error) {
	return FilterDatesToYear(dates, values, time.Now().Year())
}

// FilterDatesToYear is FilterToCurrentYear for an explicit year.
func FilterDatesToYear[T any](dates []string, values []T, year int) ([]time.Time, []T, error) {
	filteredDates := []time.Time{}
	filteredValues := []T{}
	for i := 0; i < len(dates) && i < len(values); i++ {
		date, err := ParseDate(dates[i])
		if err != nil {
			return nil, nil, err
		}
		if date.Year() == year {
			filteredDates = append(filteredDates, date)
			filteredValues = append(filteredValues, values[i])
		}
	}

	return filteredDates, filteredValues, nil
}

// FilterToYear is FilterToCurrentYear for dates that are already parsed.
func FilterToYear[T any](dates []time.Time, values []T, year int) ([]time.Time, []T) {
	filteredDates := []time.Time{}
	filteredValues := []T{}
	for i := 0; i < len(dates) && i < len(values); i++ {
		if dates[i].Year() == year {
			filteredDates = append(filteredDates, dates[i])
			filteredValues = append(filteredValues, values[i])
		}
	}
	return filteredDates, filteredValues
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", domain.ErrParse, s, err)
	}
	return t, nil
}
