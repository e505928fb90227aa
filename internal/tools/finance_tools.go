package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	t_utils "github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/maliksh/finagent/models"
)

// Input shapes for the eino tool bindings.

type StockPriceInput struct {
	Symbol string `json:"symbol"`
}

type MarketNewsInput struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

type MarketNewsOutput struct {
	Items []models.MarketNews `json:"items"`
}

type PortfolioInput struct {
	Holdings []models.PortfolioPosition `json:"holdings"`
}

type ReturnsInput struct {
	InitialInvestment float64 `json:"initial_investment"`
	FinalValue        float64 `json:"final_value"`
	PeriodYears       float64 `json:"period_years"`
}

type RiskInput struct {
	PortfolioBeta        float64 `json:"portfolio_beta"`
	Volatility           float64 `json:"volatility"`
	DiversificationScore int     `json:"diversification_score"`
}

type CurrencyInput struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
}

func NewStockPriceTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_stock_price",
			Desc: "Get current stock price and recent performance for any stock symbol",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"symbol": {
					Type:     "string",
					Desc:     "Stock ticker symbol (e.g., AAPL, GOOGL)",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input StockPriceInput) (*models.StockQuote, error) {
			quote, err := GetStockQuote(input.Symbol)
			if err != nil {
				return nil, err
			}
			return &quote, nil
		},
	)
}

func NewMarketNewsTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_market_news",
			Desc: "Get latest market news and financial updates",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": {
					Type:     "string",
					Desc:     "Market category (stocks, crypto, economy, tech)",
					Required: false,
				},
				"limit": {
					Type:     "integer",
					Desc:     "Number of news items to return (default: 5)",
					Required: false,
				},
			}),
		},
		func(ctx context.Context, input MarketNewsInput) (*MarketNewsOutput, error) {
			items, err := GetMarketNews(input.Category, input.Limit)
			if err != nil {
				return nil, err
			}
			return &MarketNewsOutput{Items: items}, nil
		},
	)
}

func NewPortfolioTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "analyze_portfolio",
			Desc: "Analyze portfolio performance and calculate value and gain/loss",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"holdings": {
					Type:     "array",
					Desc:     "List of portfolio holdings with symbol, shares and average_cost",
					Required: true,
					ElemInfo: &schema.ParameterInfo{
						Type: "object",
						SubParams: map[string]*schema.ParameterInfo{
							"symbol":       {Type: "string", Desc: "Stock ticker symbol", Required: true},
							"shares":       {Type: "number", Desc: "Number of shares", Required: true},
							"average_cost": {Type: "number", Desc: "Average cost per share", Required: true},
						},
					},
				},
			}),
		},
		func(ctx context.Context, input PortfolioInput) (*models.PortfolioSummary, error) {
			summary, err := AnalyzePortfolio(input.Holdings)
			if err != nil {
				return nil, err
			}
			return &summary, nil
		},
	)
}

func NewReturnsTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "calculate_returns",
			Desc: "Calculate investment returns including total return and CAGR",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"initial_investment": {
					Type:     "number",
					Desc:     "Initial investment amount",
					Required: true,
				},
				"final_value": {
					Type:     "number",
					Desc:     "Final portfolio value",
					Required: true,
				},
				"period_years": {
					Type:     "number",
					Desc:     "Investment period in years",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input ReturnsInput) (*models.Analysis, error) {
			analysis, err := CalculateReturns(input.InitialInvestment, input.FinalValue, input.PeriodYears)
			if err != nil {
				return nil, err
			}
			return &analysis, nil
		},
	)
}

func NewRiskTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "assess_risk",
			Desc: "Assess portfolio risk from beta and volatility and provide recommendations",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"portfolio_beta": {
					Type:     "number",
					Desc:     "Portfolio beta (systematic risk)",
					Required: true,
				},
				"volatility": {
					Type:     "number",
					Desc:     "Portfolio volatility percentage",
					Required: true,
				},
				"diversification_score": {
					Type:     "integer",
					Desc:     "Diversification score 1-10",
					Required: false,
				},
			}),
		},
		func(ctx context.Context, input RiskInput) (*models.Analysis, error) {
			analysis, err := AssessRisk(input.PortfolioBeta, input.Volatility, input.DiversificationScore)
			if err != nil {
				return nil, err
			}
			return &analysis, nil
		},
	)
}

func NewCurrencyTool() tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "convert_currency",
			Desc: "Convert between currencies using the static exchange table",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"amount": {
					Type:     "number",
					Desc:     "Amount to convert",
					Required: true,
				},
				"from_currency": {
					Type:     "string",
					Desc:     "Source currency (USD, EUR, GBP, JPY, PKR, etc.)",
					Required: true,
				},
				"to_currency": {
					Type:     "string",
					Desc:     "Target currency (USD, EUR, GBP, JPY, PKR, etc.)",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input CurrencyInput) (*models.Analysis, error) {
			analysis, err := ConvertCurrency(input.Amount, input.FromCurrency, input.ToCurrency)
			if err != nil {
				return nil, err
			}
			return &analysis, nil
		},
	)
}
