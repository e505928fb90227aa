package finance

import (
	"fmt"
	"sort"
	"strings"
)

// usdRates is the static mock exchange table, quoted as units of currency
// per US dollar. Rates are fixed so conversions stay reproducible and
// round-trips return the original amount.
var usdRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CAD": 1.35,
	"AUD": 1.52,
	"CHF": 0.88,
	"PKR": 278.50,
	"INR": 83.12,
	"CNY": 7.24,
	"AED": 3.67,
	"SAR": 3.75,
}

// Currencies lists the supported currency codes in sorted order.
func Currencies() []string {
	codes := make([]string, 0, len(usdRates))
	for code := range usdRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rate returns the units of the given currency per US dollar.
func Rate(code string) (float64, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return 0, fmt.Errorf("currency code must not be empty")
	}
	rate, ok := usdRates[c]
	if !ok {
		return 0, fmt.Errorf("unsupported currency %q", c)
	}
	return rate, nil
}

// Convert converts an amount between two currencies through the USD pivot.
// The result is intentionally left unrounded so that A->B->A reproduces the
// original amount; callers round for display.
func Convert(amount float64, from, to string) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", amount)
	}
	fromRate, err := Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := Rate(to)
	if err != nil {
		return 0, err
	}
	return amount / fromRate * toRate, nil
}
