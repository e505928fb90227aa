package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/models"
)

func TestMockRuntimeStockQuery(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "What's the current price of AAPL?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "AAPL") {
		t.Fatalf("expected reply to mention AAPL, got %q", reply)
	}
	if !strings.Contains(reply, "$") {
		t.Fatalf("expected a dollar price in %q", reply)
	}
}

func TestMockRuntimeStockAlias(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "Show me Tesla stock")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "TSLA") {
		t.Fatalf("expected alias resolution to TSLA, got %q", reply)
	}
}

func TestMockRuntimeCurrencyConversion(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "Convert 100 USD to PKR")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "27850.00 PKR") {
		t.Fatalf("expected fixed-rate conversion in %q", reply)
	}
}

func TestMockRuntimeCurrencyFromContext(t *testing.T) {
	rt := NewMockRuntime()
	history := []models.Turn{
		{Role: consts.Role_User, Content: "What is 100 USD in EUR?"},
		{Role: consts.Role_Assistant, Content: "100 USD = 92.00 EUR"},
	}
	reply, err := rt.Respond(context.Background(), history, "convert that to pkr")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	// The replayed history supplies the amount.
	if !strings.Contains(reply, "PKR") {
		t.Fatalf("expected PKR conversion, got %q", reply)
	}
	if strings.Contains(reply, "How much") {
		t.Fatalf("amount should have been resolved from history, got %q", reply)
	}
}

func TestMockRuntimeCurrencyAfterStockQuote(t *testing.T) {
	rt := NewMockRuntime()
	history := []models.Turn{
		{Role: consts.Role_User, Content: "What's AAPL trading at?"},
		{Role: consts.Role_Assistant, Content: "AAPL is trading at $178.52, up $1.20 (0.80%) from the previous close."},
	}
	reply, err := rt.Respond(context.Background(), history, "convert that to pkr")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	// The price must be converted, not the change or percent figure.
	if !strings.Contains(reply, "178.52 USD") {
		t.Fatalf("expected the quoted price to be converted, got %q", reply)
	}
}

func TestMockRuntimePortfolioHoldings(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "Analyze my portfolio with 50 shares of MSFT at $300")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "cost basis of $15000.00") {
		t.Fatalf("expected cost basis in %q", reply)
	}
}

func TestMockRuntimeReturns(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "Returns on an investment of 10000 growing to 15000 over 3 years")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "14.47") {
		t.Fatalf("expected CAGR of 14.47%% in %q", reply)
	}
}

func TestMockRuntimeReturnsBarePhrasing(t *testing.T) {
	// The chat help advertises this exact phrasing; it must produce the
	// CAGR answer, not the capability blurb.
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "10000 grew to 15000 over 3 years")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "14.47") {
		t.Fatalf("expected CAGR of 14.47%% in %q", reply)
	}
}

func TestMockRuntimeNews(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "What's the latest tech market news?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "1.") {
		t.Fatalf("expected numbered headlines in %q", reply)
	}
}

func TestMockRuntimeTriageFallback(t *testing.T) {
	rt := NewMockRuntime()
	reply, err := rt.Respond(context.Background(), nil, "hello")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "stock prices") {
		t.Fatalf("expected capability overview, got %q", reply)
	}
}
