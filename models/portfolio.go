package models

// PortfolioPosition is a single holding supplied by the user. It is consumed
// transiently by the portfolio tool and never persisted.
type PortfolioPosition struct {
	Symbol      string  `json:"symbol"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"average_cost"`
}

// PortfolioSummary is the derived valuation of a set of positions.
type PortfolioSummary struct {
	TotalValue      float64 `json:"total_value"`
	TotalCost       float64 `json:"total_cost"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
	Positions       int     `json:"num_positions"`
}
