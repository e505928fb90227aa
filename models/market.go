package models

import "time"

// StockQuote is a point-in-time price snapshot for a single symbol.
type StockQuote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Timestamp     time.Time `json:"timestamp"`
}

// MarketNews is a single news item returned by the news tool.
type MarketNews struct {
	Headline    string    `json:"headline"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
}

// Analysis is the generic result shape shared by the calculation tools:
// a named metric, its value, and a human-readable reading of it.
type Analysis struct {
	Metric         string  `json:"metric"`
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
	Recommendation string  `json:"recommendation"`
}
