package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateString is NewDate in the YYYY-MM-DD layout market data providers use.
func DateString(year, month, day int) string {
	return NewDate(year, month, day).Format(time.DateOnly)
}
