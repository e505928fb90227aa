// Package finance holds the pure calculations behind the assistant's tools.
// Nothing here performs I/O; every function validates its inputs and returns
// a descriptive error on rejection.
package finance

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskBucket labels returned by AssessRisk.
const (
	RiskLow          = "low"
	RiskModerate     = "moderate"
	RiskModerateHigh = "moderate-high"
	RiskHigh         = "high"
)

// Round2 rounds a monetary or percentage value to two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// PercentReturn computes the simple percentage return between a starting and
// ending value.
func PercentReturn(start, end float64) (float64, error) {
	if start <= 0 {
		return 0, fmt.Errorf("starting value must be positive, got %v", start)
	}
	if end < 0 {
		return 0, fmt.Errorf("ending value must not be negative, got %v", end)
	}
	return (end - start) / start * 100, nil
}

// CAGR computes the compound annual growth rate (end/start)^(1/years) - 1,
// expressed as a percentage.
func CAGR(start, end, years float64) (float64, error) {
	if start <= 0 {
		return 0, fmt.Errorf("initial investment must be positive, got %v", start)
	}
	if end <= 0 {
		return 0, fmt.Errorf("final value must be positive, got %v", end)
	}
	if years <= 0 {
		return 0, fmt.Errorf("period must be positive, got %v years", years)
	}
	return (math.Pow(end/start, 1/years) - 1) * 100, nil
}

// AssessRisk maps portfolio beta and volatility onto a fixed bucket table:
//
//	high          beta > 1.2  or vol > 25
//	moderate-high beta > 1.0  or vol > 18
//	moderate      beta > 0.8  or vol > 12
//	low           otherwise
//
// Volatility is a percentage and must not be negative.
func AssessRisk(beta, volatility float64) (string, error) {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return "", fmt.Errorf("beta must be a finite number")
	}
	if volatility < 0 || math.IsNaN(volatility) || math.IsInf(volatility, 0) {
		return "", fmt.Errorf("volatility must be a non-negative percentage, got %v", volatility)
	}

	switch {
	case beta > 1.2 || volatility > 25:
		return RiskHigh, nil
	case beta > 1.0 || volatility > 18:
		return RiskModerateHigh, nil
	case beta > 0.8 || volatility > 12:
		return RiskModerate, nil
	default:
		return RiskLow, nil
	}
}

// RiskRecommendations returns the canned guidance for a risk bucket,
// optionally extended when the diversification score (1-10) is weak.
func RiskRecommendations(bucket string, diversification int) []string {
	var recs []string
	switch bucket {
	case RiskHigh:
		recs = []string{
			"Consider reducing high-beta positions",
			"Add defensive stocks and bonds",
			"Increase cash position",
		}
	case RiskModerateHigh, RiskModerate:
		recs = []string{
			"Maintain current allocation",
			"Consider gradual rebalancing",
		}
	default:
		recs = []string{
			"Your portfolio is well-positioned",
			"Consider growth opportunities",
		}
	}
	if diversification > 0 && diversification < 6 {
		recs = append(recs, "Improve diversification across sectors")
	}
	return recs
}

// ValidateSymbol checks a ticker symbol and returns its canonical upper-case
// form.
func ValidateSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", fmt.Errorf("symbol must not be empty")
	}
	return s, nil
}
