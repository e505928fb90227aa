package agents

import (
	"testing"

	"github.com/maliksh/finagent/consts"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"What's the current price of AAPL?", consts.Agent_StockAnalyst},
		{"Show me Tesla stock", consts.Agent_StockAnalyst},
		{"Analyze my portfolio holdings", consts.Agent_PortfolioManager},
		{"What is my risk exposure?", consts.Agent_PortfolioManager},
		{"10000 grew to 15000 over 3 years", consts.Agent_PortfolioManager},
		{"What's the latest market news?", consts.Agent_MarketIntelligence},
		{"Convert 100 USD to PKR", consts.Agent_CurrencySpecialist},
		{"how many rupees is that", consts.Agent_CurrencySpecialist},
		{"subtract 500 from that", consts.Agent_CurrencySpecialist},
		{"hello there", consts.Agent_Triage},
	}
	for _, tc := range cases {
		if got := DetectIntent(tc.query); got != tc.want {
			t.Fatalf("DetectIntent(%q) = %s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestSpecialistForUnknownFallsBack(t *testing.T) {
	spec := SpecialistFor("No Such Agent")
	if spec.Name != consts.Agent_Triage {
		t.Fatalf("expected triage fallback, got %s", spec.Name)
	}
}

func TestSpecialistsHaveTools(t *testing.T) {
	for _, name := range []string{
		consts.Agent_StockAnalyst,
		consts.Agent_PortfolioManager,
		consts.Agent_MarketIntelligence,
		consts.Agent_CurrencySpecialist,
		consts.Agent_Triage,
	} {
		spec := SpecialistFor(name)
		if len(spec.Tools()) == 0 {
			t.Fatalf("specialist %s has no tools", name)
		}
		if spec.SystemPrompt == "" {
			t.Fatalf("specialist %s has no system prompt", name)
		}
	}
}
