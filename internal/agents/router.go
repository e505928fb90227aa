package agents

import (
	"strings"

	"github.com/maliksh/finagent/consts"
)

// Keyword routing. Order matters: math-style requests go to the currency
// specialist first so "subtract 500 from that" keeps its monetary context,
// then stocks, portfolio, news, currency, and finally triage.
var (
	mathKeywords = []string{"subtract", "add", "multiply", "divide", "percent", "%", "calculate"}

	stockKeywords = []string{
		"stock", "price", "aapl", "googl", "tsla", "nvda", "msft", "amzn",
		"meta", "ticker", "shares", "equity", "analysis",
	}

	portfolioKeywords = []string{
		"portfolio", "investment", "returns", "risk", "diversification",
		"holdings", "asset", "allocation", "cagr", "grew", "grow",
	}

	newsKeywords = []string{"news", "market", "trends", "sector", "update", "latest", "breaking"}

	currencyKeywords = []string{
		"currency", "forex", "convert", "exchange rate", "eur", "gbp", "jpy",
		"usd", "international", "pkr", "rupees", "pakistan", "inr", "cny",
		"cad", "aud", "chf", "aed", "sar",
	}
)

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// DetectIntent picks the specialist agent for a query.
func DetectIntent(query string) string {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, mathKeywords):
		return consts.Agent_CurrencySpecialist
	case containsAny(q, stockKeywords):
		return consts.Agent_StockAnalyst
	case containsAny(q, portfolioKeywords):
		return consts.Agent_PortfolioManager
	case containsAny(q, newsKeywords):
		return consts.Agent_MarketIntelligence
	case containsAny(q, currencyKeywords):
		return consts.Agent_CurrencySpecialist
	default:
		return consts.Agent_Triage
	}
}
