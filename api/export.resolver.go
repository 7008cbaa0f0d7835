package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

// export downloads this year's prices or returns for a symbol as CSV.
func (h ApiHandler) export(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", h.DefaultSymbol)
	seriesName := c.DefaultQuery("series", "prices")
	if seriesName != "prices" && seriesName != "returns" {
		returnErrorJsonCode(fmt.Errorf("series must be prices or returns, got %q", seriesName), c, 400)
		return
	}

	var riskFreeRate *float64
	if v := c.Query("riskFreeRate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse riskFreeRate: %w", err), c, 400)
			return
		}
		riskFreeRate = &rate
	}

	analysis, err := h.runAnalysis(c, symbol, riskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	series := analysis.Prices
	if seriesName == "returns" {
		if !analysis.HasReturnsChart() {
			returnErrorJsonCode(fmt.Errorf("%s", analysis.ReturnsError), c, 409)
			return
		}
		series = analysis.Returns
	}

	out, err := gocsv.MarshalBytes(series.Rows())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to write csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s-%d.csv", analysis.Symbol, seriesName, analysis.Year))
	c.Data(200, "text/csv", out)
}
