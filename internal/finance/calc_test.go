package finance

import (
	"math"
	"testing"
)

func TestPercentReturn(t *testing.T) {
	got, err := PercentReturn(150, 178.52)
	if err != nil {
		t.Fatalf("PercentReturn: %v", err)
	}
	if r := Round2(got); r != 19.01 {
		t.Fatalf("expected 19.01%%, got %v", r)
	}
}

func TestPercentReturnRejectsBadInput(t *testing.T) {
	if _, err := PercentReturn(0, 100); err == nil {
		t.Fatal("expected error for zero start")
	}
	if _, err := PercentReturn(-10, 100); err == nil {
		t.Fatal("expected error for negative start")
	}
	if _, err := PercentReturn(100, -1); err == nil {
		t.Fatal("expected error for negative end")
	}
}

func TestCAGR(t *testing.T) {
	got, err := CAGR(10000, 15000, 3)
	if err != nil {
		t.Fatalf("CAGR: %v", err)
	}
	if math.Abs(got-14.47) > 0.01 {
		t.Fatalf("expected ~14.47%%, got %v", got)
	}
}

func TestCAGRRejectsBadInput(t *testing.T) {
	cases := []struct {
		name               string
		start, end, years  float64
	}{
		{"zero start", 0, 100, 1},
		{"zero end", 100, 0, 1},
		{"zero years", 100, 200, 0},
		{"negative years", 100, 200, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CAGR(tc.start, tc.end, tc.years); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestAssessRiskBuckets(t *testing.T) {
	cases := []struct {
		beta, vol float64
		want      string
	}{
		{0.5, 10, RiskLow},
		{0.9, 10, RiskModerate},
		{0.5, 15, RiskModerate},
		{1.2, 20, RiskModerateHigh},
		{1.1, 10, RiskModerateHigh},
		{1.3, 10, RiskHigh},
		{0.5, 30, RiskHigh},
	}
	for _, tc := range cases {
		got, err := AssessRisk(tc.beta, tc.vol)
		if err != nil {
			t.Fatalf("AssessRisk(%v, %v): %v", tc.beta, tc.vol, err)
		}
		if got != tc.want {
			t.Fatalf("AssessRisk(%v, %v) = %s, want %s", tc.beta, tc.vol, got, tc.want)
		}
	}
}

func TestAssessRiskRejectsNegativeVolatility(t *testing.T) {
	if _, err := AssessRisk(1.0, -5); err == nil {
		t.Fatal("expected error for negative volatility")
	}
}

func TestValidateSymbol(t *testing.T) {
	got, err := ValidateSymbol("  aapl ")
	if err != nil {
		t.Fatalf("ValidateSymbol: %v", err)
	}
	if got != "AAPL" {
		t.Fatalf("expected AAPL, got %s", got)
	}

	if _, err := ValidateSymbol("   "); err == nil {
		t.Fatal("expected error for blank symbol")
	}
}
