package agents

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/internal/finance"
	"github.com/maliksh/finagent/internal/tools"
	"github.com/maliksh/finagent/models"
)

// MockRuntime is the in-process dispatcher: it maps the detected intent
// straight onto the mock tool functions and renders their output as text.
// No model is involved, which keeps the assistant fully offline.
type MockRuntime struct{}

func NewMockRuntime() *MockRuntime {
	return &MockRuntime{}
}

var (
	numberPattern  = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	holdingPattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s+shares?\s+of\s+([A-Za-z][A-Za-z.]{0,5})\s+(?:at|@)\s+\$?(\d[\d,]*(?:\.\d+)?)`)
	yearsPattern   = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(?:years?|yrs?)`)
)

var tickerAliases = map[string]string{
	"apple":     "AAPL",
	"google":    "GOOGL",
	"alphabet":  "GOOGL",
	"tesla":     "TSLA",
	"microsoft": "MSFT",
	"amazon":    "AMZN",
	"nvidia":    "NVDA",
	"meta":      "META",
	"facebook":  "META",
	"netflix":   "NFLX",
}

func (r *MockRuntime) Respond(ctx context.Context, history []models.Turn, input string) (string, error) {
	switch DetectIntent(input) {
	case consts.Agent_StockAnalyst:
		return r.answerStock(input), nil
	case consts.Agent_PortfolioManager:
		return r.answerPortfolio(input), nil
	case consts.Agent_MarketIntelligence:
		return r.answerNews(input), nil
	case consts.Agent_CurrencySpecialist:
		return r.answerCurrency(history, input), nil
	default:
		return r.answerTriage(), nil
	}
}

func (r *MockRuntime) answerStock(input string) string {
	// "50 shares of MSFT at $300" routes here via the "shares" keyword but
	// is really a portfolio question.
	if holdingPattern.MatchString(input) {
		return r.answerPortfolio(input)
	}

	symbol := findTicker(input)
	if symbol == "" {
		return "Which stock are you interested in? Give me a ticker symbol such as AAPL or TSLA."
	}

	quote, err := tools.GetStockQuote(symbol)
	if err != nil {
		return err.Error()
	}

	direction := "up"
	if quote.Change < 0 {
		direction = "down"
	}
	return fmt.Sprintf("%s is trading at $%.2f, %s $%.2f (%.2f%%) from the previous close.",
		quote.Symbol, quote.Price, direction, abs(quote.Change), quote.ChangePercent)
}

func (r *MockRuntime) answerPortfolio(input string) string {
	lower := strings.ToLower(input)

	if matches := holdingPattern.FindAllStringSubmatch(input, -1); len(matches) > 0 {
		positions := make([]models.PortfolioPosition, 0, len(matches))
		for _, m := range matches {
			positions = append(positions, models.PortfolioPosition{
				Symbol:      m[2],
				Shares:      parseNumber(m[1]),
				AverageCost: parseNumber(m[3]),
			})
		}
		summary, err := tools.AnalyzePortfolio(positions)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("Your portfolio of %d position(s) is worth $%.2f against a cost basis of $%.2f: a gain/loss of $%.2f (%.2f%%).",
			summary.Positions, summary.TotalValue, summary.TotalCost, summary.GainLoss, summary.GainLossPercent)
	}

	numbers := parseNumbers(input)

	if strings.Contains(lower, "risk") && len(numbers) >= 2 {
		analysis, err := tools.AssessRisk(numbers[0], numbers[1], 0)
		if err != nil {
			return err.Error()
		}
		return analysis.Interpretation + " Recommendations: " + analysis.Recommendation
	}

	if len(numbers) >= 2 {
		years := 1.0
		if m := yearsPattern.FindStringSubmatch(input); m != nil {
			years = parseNumber(m[1])
		} else if len(numbers) >= 3 {
			years = numbers[2]
		}
		analysis, err := tools.CalculateReturns(numbers[0], numbers[1], years)
		if err != nil {
			return err.Error()
		}
		return analysis.Interpretation + " " + analysis.Recommendation
	}

	return "Tell me about your holdings (for example \"50 shares of MSFT at $300\") or give me start value, end value and years to calculate returns."
}

func (r *MockRuntime) answerNews(input string) string {
	lower := strings.ToLower(input)
	category := "stocks"
	for _, c := range []string{"crypto", "economy", "tech"} {
		if strings.Contains(lower, c) {
			category = c
			break
		}
	}

	items, err := tools.GetMarketNews(category, 5)
	if err != nil {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the latest %s headlines:\n", category)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, item.Headline, item.Source)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *MockRuntime) answerCurrency(history []models.Turn, input string) string {
	codes := currencyCodes(input)
	amounts := parseNumbers(input)

	amount := 0.0
	if len(amounts) > 0 {
		amount = amounts[0]
	} else {
		// "convert that to PKR": resolve the amount by replaying history.
		amount = lastAmount(history)
	}
	if amount <= 0 {
		return "How much would you like to convert? Give me an amount and two currencies, e.g. \"100 USD to PKR\"."
	}

	from, to := "USD", ""
	switch len(codes) {
	case 0:
		return "Which currencies? I support " + strings.Join(finance.Currencies(), ", ") + "."
	case 1:
		to = codes[0]
		if to == "USD" {
			return "Tell me which currency to convert from, e.g. \"100 EUR to USD\"."
		}
	default:
		from, to = codes[0], codes[1]
	}

	analysis, err := tools.ConvertCurrency(amount, from, to)
	if err != nil {
		return err.Error()
	}
	return analysis.Interpretation + ". " + analysis.Recommendation
}

func (r *MockRuntime) answerTriage() string {
	return "I can help with stock prices, portfolio analysis, investment returns, risk assessment, " +
		"market news and currency conversion. Ask me something like \"What's AAPL trading at?\" or " +
		"\"Convert 100 USD to PKR\"."
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return v
}

func parseNumbers(s string) []float64 {
	matches := numberPattern.FindAllString(s, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		out = append(out, parseNumber(m))
	}
	return out
}

// currencyCodes returns the supported currency codes mentioned in the
// query, in order of appearance.
func currencyCodes(s string) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
	}) {
		code := strings.ToUpper(word)
		if seen[code] {
			continue
		}
		if _, err := finance.Rate(code); err == nil {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	// Spelled-out currencies the original understood.
	lower := strings.ToLower(s)
	for phrase, code := range map[string]string{
		"rupees": "PKR", "pakistan": "PKR", "dollars": "USD", "euros": "EUR", "pounds": "GBP", "yen": "JPY",
	} {
		if strings.Contains(lower, phrase) && !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}

// findTicker extracts a ticker symbol: an explicit upper-case token first,
// then well-known company names.
func findTicker(s string) string {
	for _, word := range strings.Fields(s) {
		token := strings.Trim(word, ".,?!'\"()")
		if len(token) < 2 || len(token) > 5 {
			continue
		}
		if token != strings.ToUpper(token) || strings.ContainsAny(token, "0123456789") {
			continue
		}
		if _, err := finance.Rate(token); err == nil {
			continue // currency code, not a ticker
		}
		return token
	}

	lower := strings.ToLower(s)
	for name, symbol := range tickerAliases {
		if strings.Contains(lower, name) {
			return symbol
		}
	}
	return ""
}

// lastAmount resolves a referenced amount ("convert that to PKR") from the
// transcript: the first number of the most recent user turn that has one,
// falling back to assistant turns. User turns win so that the change and
// percent figures of a quote reply do not shadow the amount the user was
// talking about, and the first figure is the principal one (a quote reply
// leads with the price).
func lastAmount(history []models.Turn) float64 {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != consts.Role_User {
			continue
		}
		if nums := parseNumbers(history[i].Content); len(nums) > 0 {
			return nums[0]
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if nums := parseNumbers(history[i].Content); len(nums) > 0 {
			return nums[0]
		}
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
