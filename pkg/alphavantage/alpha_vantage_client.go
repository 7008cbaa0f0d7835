package alphavantage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"stockdash/internal/logger"

	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co"
	timeSeriesKey  = "Time Series (Daily)"
)

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
	// OutputSize is "compact" (latest 100 days) or "full".
	OutputSize string
}

func NewClient(httpClient *http.Client, apiKey, baseURL, outputSize string) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Client{
		HttpClient: httpClient,
		ApiKey:     apiKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		OutputSize: outputSize,
	}
}

type MetaData struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	OutputSize    string `json:"4. Output Size"`
	TimeZone      string `json:"5. Time Zone"`
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type DailyClose struct {
	Date  string
	Close decimal.Decimal
}

// DailySeriesResult is either a Success or a Failure.
type DailySeriesResult interface {
	isDailySeriesResult()
}

// Success holds the closes in the order the API listed them, which is
// newest first for TIME_SERIES_DAILY.
type Success struct {
	MetaData MetaData
	Closes   []DailyClose
}

// Failure is a response that reached us but carries no usable series:
// an API error message, a throttling note or a malformed payload.
type Failure struct {
	Reason string
	// Rejected is set when the API refused the request itself via
	// "Error Message", which it does for symbols it does not know.
	Rejected bool
}

func (Success) isDailySeriesResult() {}
func (Failure) isDailySeriesResult() {}

func (c Client) dailySeriesUrl(symbol string) string {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	if c.OutputSize != "" {
		q.Set("outputsize", c.OutputSize)
	}
	q.Set("apikey", c.ApiKey)
	return fmt.Sprintf("%s/query?%s", c.BaseURL, q.Encode())
}

// GetDailySeries fetches daily closing prices for symbol. Transport
// problems and non-200 responses are returned as errors; everything
// else is described by the result.
func (c Client) GetDailySeries(ctx context.Context, symbol string) (DailySeriesResult, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dailySeriesUrl(symbol), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	result := decodeDailySeries(bytes.NewReader(responseBytes))
	if f, ok := result.(Failure); ok {
		log.Warnw("alpha vantage returned no series", "symbol", symbol, "reason", f.Reason)
	}
	return result, nil
}

// decodeDailySeries walks the payload token by token so the dates keep
// the order they appear in, which a map would lose.
func decodeDailySeries(r io.Reader) DailySeriesResult {
	dec := json.NewDecoder(r)

	malformed := func(err error) DailySeriesResult {
		return Failure{Reason: fmt.Sprintf("malformed payload: %v", err)}
	}

	if err := expectDelim(dec, '{'); err != nil {
		return malformed(err)
	}

	out := Success{Closes: []DailyClose{}}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return malformed(err)
		}
		key, _ := keyToken.(string)

		switch key {
		case timeSeriesKey:
			closes, err := decodeTimeSeries(dec)
			if err != nil {
				return malformed(err)
			}
			out.Closes = closes
		case "Meta Data":
			if err := dec.Decode(&out.MetaData); err != nil {
				return malformed(err)
			}
		case "Error Message", "Note", "Information":
			var msg string
			if err := dec.Decode(&msg); err != nil {
				return malformed(err)
			}
			return Failure{Reason: msg, Rejected: key == "Error Message"}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return malformed(err)
			}
		}
	}

	return out
}

func decodeTimeSeries(dec *json.Decoder) ([]DailyClose, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	closes := []DailyClose{}
	for dec.More() {
		dateToken, err := dec.Token()
		if err != nil {
			return nil, err
		}
		date, _ := dateToken.(string)

		var bar dailyBar
		if err := dec.Decode(&bar); err != nil {
			return nil, fmt.Errorf("bar for %s: %w", date, err)
		}
		closePrice, err := decimal.NewFromString(bar.Close)
		if err != nil {
			return nil, fmt.Errorf("close for %s: %w", date, err)
		}
		if !closePrice.IsPositive() {
			return nil, fmt.Errorf("close for %s is not positive: %s", date, closePrice.String())
		}
		closes = append(closes, DailyClose{
			Date:  date,
			Close: closePrice,
		})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return closes, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	token, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := token.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}
	return nil
}
