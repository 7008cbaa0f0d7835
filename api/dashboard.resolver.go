package api

import (
	"encoding/json"
	"html/template"
	"strconv"
	"time"

	"stockdash/internal/domain"
	"stockdash/internal/service"

	"github.com/gin-gonic/gin"
)

type chartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type dashboardPage struct {
	Title            string
	Symbol           string
	Error            string
	HasAnalysis      bool
	SharpeLabel      string
	AnnualizedSharpe string
	Year             int
	NumPrices        int
	PricesChart      template.JS
	ReturnsChart     template.JS
	ReturnsError     string
}

func newChartData(series domain.FilteredSeries) (template.JS, error) {
	data := chartData{
		Labels: make([]string, 0, len(series.Dates)),
		Values: series.Values,
	}
	for _, d := range series.Dates {
		data.Labels = append(data.Labels, d.Format(time.DateOnly))
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// dashboard renders the single page: a symbol input, the Sharpe ratio and
// this year's price and return charts.
func (h ApiHandler) dashboard(c *gin.Context) {
	page := dashboardPage{
		Title:  "Stock Data Analysis",
		Symbol: service.NormalizeSymbol(c.DefaultQuery("symbol", h.DefaultSymbol)),
	}

	var riskFreeRate *float64
	if v := c.Query("riskFreeRate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			page.Error = "risk free rate must be a number"
			c.HTML(400, "dashboard.html", page)
			return
		}
		riskFreeRate = &rate
	}

	if page.Symbol == "" {
		c.HTML(200, "dashboard.html", page)
		return
	}

	analysis, err := h.runAnalysis(c, page.Symbol, riskFreeRate)
	if err != nil {
		page.Error = err.Error()
		c.HTML(errorStatusCode(err), "dashboard.html", page)
		return
	}

	page.HasAnalysis = true
	page.SharpeLabel = sharpeLabel(analysis)
	page.AnnualizedSharpe = analysis.AnnualizedSharpe.String()
	page.Year = analysis.Year
	page.NumPrices = analysis.NumPrices
	page.PricesChart, err = newChartData(analysis.Prices)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if analysis.HasReturnsChart() {
		page.ReturnsChart, err = newChartData(analysis.Returns)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
	} else {
		page.ReturnsError = analysis.ReturnsError
	}

	c.HTML(200, "dashboard.html", page)
}
