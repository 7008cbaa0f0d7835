package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"stockdash/cmd"
	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	symbol       string
	riskFreeRate float64
	seriesName   string
	outputPath   string
)

var rootCmd = &cobra.Command{
	Use:   "script",
	Short: "Run symbol analyses without the web server",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the Sharpe ratio and this year's series for a symbol",
	Long: `Fetch daily prices for a symbol and print the analysis as JSON.

Examples:
  script analyze --symbol ICLN
  script analyze --symbol SPY --risk-free-rate 0.0001 --config config.yaml`,
	RunE: runAnalyze,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write this year's prices or returns for a symbol as CSV",
	Long: `Examples:
  script export --symbol ICLN --series prices
  script export --symbol ICLN --series returns --output icln-returns.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&symbol, "symbol", "", "ticker symbol, defaults to analysis.default_symbol")
	rootCmd.PersistentFlags().Float64Var(&riskFreeRate, "risk-free-rate", 0, "daily risk free rate, defaults to analysis.risk_free_rate")

	exportCmd.Flags().StringVar(&seriesName, "series", "prices", "prices or returns")
	exportCmd.Flags().StringVar(&outputPath, "output", "", "file to write, stdout if empty")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeFromFlags(c *cobra.Command) (*domain.Analysis, error) {
	handler, _, err := cmd.InitializeDependencies(configPath)
	if err != nil {
		return nil, err
	}

	in := service.AnalyzeInput{
		Symbol:       symbol,
		RiskFreeRate: handler.DefaultRiskFreeRate,
	}
	if in.Symbol == "" {
		in.Symbol = handler.DefaultSymbol
	}
	if c.Flags().Changed("risk-free-rate") {
		in.RiskFreeRate = riskFreeRate
	}

	profile := domain.NewPerformanceProfile()
	ctx := logger.WithLogger(context.Background(), handler.Logger)
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)

	return handler.AnalysisService.Analyze(ctx, in)
}

func runAnalyze(c *cobra.Command, args []string) error {
	analysis, err := analyzeFromFlags(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.OutOrStdout(), "Sharpe Ratio for %s: %s\n", analysis.Symbol, analysis.SharpeRatio.String())
	if analysis.ReturnsError != "" {
		fmt.Fprintln(c.OutOrStdout(), analysis.ReturnsError)
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	fmt.Fprintln(c.OutOrStdout(), string(out))
	return nil
}

func runExport(c *cobra.Command, args []string) error {
	if seriesName != "prices" && seriesName != "returns" {
		return fmt.Errorf("--series must be prices or returns, got %q", seriesName)
	}

	analysis, err := analyzeFromFlags(c)
	if err != nil {
		return err
	}

	series := analysis.Prices
	if seriesName == "returns" {
		if !analysis.HasReturnsChart() {
			return fmt.Errorf("%s", analysis.ReturnsError)
		}
		series = analysis.Returns
	}

	var w io.Writer = c.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputPath, err)
		}
		defer f.Close()
		w = f
	}

	return gocsv.Marshal(series.Rows(), w)
}
