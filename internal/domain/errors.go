package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch means the market data provider was unreachable or
	// returned something we could not use.
	ErrFetch = errors.New("failed to fetch market data")

	// ErrUnknownSymbol is a fetch failure caused by the request rather
	// than the provider, such as a ticker the provider does not list.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrFetch)

	ErrParse = errors.New("failed to parse date")

	ErrAlignmentMismatch = errors.New("filtered return dates and values have different lengths")
)

// AlignmentMismatchMessage is what the dashboard shows in place of the
// returns chart when ErrAlignmentMismatch occurs.
const AlignmentMismatchMessage = "Error: Mismatch in dates and returns data lengths."

var ErrMissingSymbol = errors.New("symbol is required")
