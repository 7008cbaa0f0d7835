package api

import (
	"fmt"

	"stockdash/internal/domain"
	"stockdash/internal/service"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Symbol       string   `json:"symbol"`
	RiskFreeRate *float64 `json:"riskFreeRate"`
}

type analyzeResponse struct {
	Label string `json:"label"`
	domain.Analysis
}

func sharpeLabel(analysis *domain.Analysis) string {
	return fmt.Sprintf("Sharpe Ratio for %s: %s", analysis.Symbol, analysis.SharpeRatio.String())
}

// runAnalysis applies request defaults, runs the analysis and records
// its outcome.
func (h ApiHandler) runAnalysis(c *gin.Context, symbol string, riskFreeRate *float64) (*domain.Analysis, error) {
	in := service.AnalyzeInput{
		Symbol:       symbol,
		RiskFreeRate: h.DefaultRiskFreeRate,
	}
	if riskFreeRate != nil {
		in.RiskFreeRate = *riskFreeRate
	}

	analysis, err := h.AnalysisService.Analyze(requestContext(c), in)
	h.Metrics.ObserveAnalysis(analysis, err)
	return analysis, err
}

func (h ApiHandler) analyze(c *gin.Context) {
	var requestBody analyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Symbol == "" {
		requestBody.Symbol = h.DefaultSymbol
	}

	analysis, err := h.runAnalysis(c, requestBody.Symbol, requestBody.RiskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analyzeResponse{
		Label:    sharpeLabel(analysis),
		Analysis: *analysis,
	})
}
