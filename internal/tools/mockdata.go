// Package tools implements the assistant's financial tools. All data is
// synthetic: quotes are generated from a per-symbol base price plus bounded
// noise and news items are canned. Nothing in this package touches the
// network.
package tools

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/maliksh/finagent/internal/finance"
	"github.com/maliksh/finagent/models"
)

var newsCategories = map[string][]string{
	"stocks":  {"Stock Market", "Equities", "Wall Street"},
	"crypto":  {"Cryptocurrency", "Bitcoin", "DeFi"},
	"economy": {"Economy", "Inflation", "Federal Reserve"},
	"tech":    {"Technology", "AI", "Semiconductors"},
}

var newsSources = []string{"Bloomberg", "Reuters", "CNBC", "Financial Times", "MarketWatch"}

// basePrice derives a stable price in [50, 500) from the symbol itself, so
// repeated quotes for the same ticker stay in the same neighborhood.
func basePrice(symbol string) float64 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return 50 + float64(h.Sum32()%45000)/100
}

// GetStockQuote returns a mock quote: the symbol's base price perturbed by
// noise in [-10, 10).
func GetStockQuote(symbol string) (models.StockQuote, error) {
	sym, err := finance.ValidateSymbol(symbol)
	if err != nil {
		return models.StockQuote{}, err
	}

	base := basePrice(sym)
	change := rand.Float64()*20 - 10
	price := base + change

	return models.StockQuote{
		Symbol:        sym,
		Price:         finance.Round2(price),
		Change:        finance.Round2(change),
		ChangePercent: finance.Round2(change / base * 100),
		Timestamp:     time.Now(),
	}, nil
}

// GetMarketNews returns up to limit canned news items for a category.
// Unknown categories fall back to generic market headlines.
func GetMarketNews(category string, limit int) ([]models.MarketNews, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	cat := strings.ToLower(strings.TrimSpace(category))
	topics, ok := newsCategories[cat]
	if !ok {
		topics = []string{"Market"}
	}

	now := time.Now()
	items := make([]models.MarketNews, 0, limit)
	for i := 0; i < limit; i++ {
		topic := topics[rand.Intn(len(topics))]
		source := newsSources[rand.Intn(len(newsSources))]
		items = append(items, models.MarketNews{
			Headline:    fmt.Sprintf("%s Update: Market analysis and insights %d", topic, i+1),
			Source:      source,
			Summary:     fmt.Sprintf("Analysis of %s trends and market movements. Expert opinions on future direction.", strings.ToLower(topic)),
			PublishedAt: now.Add(-time.Duration(rand.Intn(24)) * time.Hour),
		})
	}
	return items, nil
}

// AnalyzePortfolio values each position at its current mock quote and
// aggregates cost, value and gain/loss.
func AnalyzePortfolio(positions []models.PortfolioPosition) (models.PortfolioSummary, error) {
	if len(positions) == 0 {
		return models.PortfolioSummary{}, fmt.Errorf("at least one position is required")
	}

	var totalValue, totalCost float64
	for i, pos := range positions {
		sym, err := finance.ValidateSymbol(pos.Symbol)
		if err != nil {
			return models.PortfolioSummary{}, fmt.Errorf("position %d: %w", i+1, err)
		}
		if pos.Shares <= 0 {
			return models.PortfolioSummary{}, fmt.Errorf("position %d (%s): shares must be positive, got %v", i+1, sym, pos.Shares)
		}
		if pos.AverageCost <= 0 {
			return models.PortfolioSummary{}, fmt.Errorf("position %d (%s): average cost must be positive, got %v", i+1, sym, pos.AverageCost)
		}

		quote, err := GetStockQuote(sym)
		if err != nil {
			return models.PortfolioSummary{}, err
		}
		totalCost += pos.Shares * pos.AverageCost
		totalValue += pos.Shares * quote.Price
	}

	gainLoss := totalValue - totalCost
	gainLossPct := 0.0
	if totalCost > 0 {
		gainLossPct = gainLoss / totalCost * 100
	}

	return models.PortfolioSummary{
		TotalValue:      finance.Round2(totalValue),
		TotalCost:       finance.Round2(totalCost),
		GainLoss:        finance.Round2(gainLoss),
		GainLossPercent: finance.Round2(gainLossPct),
		Positions:       len(positions),
	}, nil
}

// CalculateReturns computes total return and CAGR for an investment period.
func CalculateReturns(initial, final, years float64) (models.Analysis, error) {
	totalPct, err := finance.PercentReturn(initial, final)
	if err != nil {
		return models.Analysis{}, err
	}
	cagr, err := finance.CAGR(initial, final, years)
	if err != nil {
		return models.Analysis{}, err
	}

	recommendation := "Review investment strategy for better returns."
	switch {
	case cagr > 10:
		recommendation = "Excellent performance! Consider maintaining your strategy."
	case cagr > 5:
		recommendation = "Good performance. Continue monitoring and diversifying."
	}

	return models.Analysis{
		Metric: "CAGR",
		Value:  finance.Round2(cagr),
		Interpretation: fmt.Sprintf("Your investment grew by %.2f%% over %v years. Annualized return: %.2f%%",
			totalPct, years, cagr),
		Recommendation: recommendation,
	}, nil
}

// AssessRisk buckets the portfolio by beta and volatility and attaches the
// canned recommendations.
func AssessRisk(beta, volatility float64, diversification int) (models.Analysis, error) {
	bucket, err := finance.AssessRisk(beta, volatility)
	if err != nil {
		return models.Analysis{}, err
	}
	recs := finance.RiskRecommendations(bucket, diversification)

	return models.Analysis{
		Metric: "Risk Level",
		Value:  beta,
		Interpretation: fmt.Sprintf("Portfolio risk level: %s. Beta: %v, Volatility: %v%%",
			bucket, beta, volatility),
		Recommendation: strings.Join(recs, "; "),
	}, nil
}

// ConvertCurrency converts between two mock-table currencies.
func ConvertCurrency(amount float64, from, to string) (models.Analysis, error) {
	converted, err := finance.Convert(amount, from, to)
	if err != nil {
		return models.Analysis{}, err
	}

	fromRate, _ := finance.Rate(from)
	toRate, _ := finance.Rate(to)
	fromCode := strings.ToUpper(strings.TrimSpace(from))
	toCode := strings.ToUpper(strings.TrimSpace(to))

	return models.Analysis{
		Metric: "Currency Conversion",
		Value:  finance.Round2(converted),
		Interpretation: fmt.Sprintf("%v %s = %.2f %s", amount, fromCode, converted, toCode),
		Recommendation: fmt.Sprintf("Conversion rate: %.4f %s/USD, %.4f %s/USD",
			1/fromRate, fromCode, toRate, toCode),
	}, nil
}
