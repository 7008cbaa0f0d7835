package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"stockdash/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the dashboard. Each
// instance has its own registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration     *prometheus.HistogramVec
	Analyses            *prometheus.CounterVec
	DegenerateRatios    prometheus.Counter
	AlignmentMismatches prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockdash_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"method", "route", "status"},
		),
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_analyses_total",
				Help: "Symbol analyses by outcome",
			},
			[]string{"result"},
		),
		DegenerateRatios: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stockdash_degenerate_sharpe_ratios_total",
				Help: "Analyses whose Sharpe ratio was NaN or infinite",
			},
		),
		AlignmentMismatches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stockdash_returns_alignment_mismatches_total",
				Help: "Analyses whose returns chart was dropped because dates and values did not line up",
			},
		),
	}

	m.Registry.MustRegister(
		m.RequestDuration,
		m.Analyses,
		m.DegenerateRatios,
		m.AlignmentMismatches,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// ObserveAnalysis records the outcome of one call to the analysis service.
func (m *Metrics) ObserveAnalysis(analysis *domain.Analysis, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Analyses.WithLabelValues(analysisErrorLabel(err)).Inc()
		return
	}
	m.Analyses.WithLabelValues("ok").Inc()
	if !analysis.SharpeRatio.IsFinite() {
		m.DegenerateRatios.Inc()
	}
	if !analysis.HasReturnsChart() {
		m.AlignmentMismatches.Inc()
	}
}

func analysisErrorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownSymbol):
		return "unknown_symbol"
	case errors.Is(err, domain.ErrFetch):
		return "fetch_error"
	case errors.Is(err, domain.ErrParse):
		return "parse_error"
	case errors.Is(err, domain.ErrMissingSymbol):
		return "bad_request"
	}
	return "error"
}
