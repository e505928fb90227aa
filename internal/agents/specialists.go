package agents

import (
	"github.com/cloudwego/eino/components/tool"

	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/internal/tools"
)

// Specialist describes one of the assistant's focused agents: a system
// prompt plus the tool set it is allowed to call.
type Specialist struct {
	Name         string
	Description  string
	SystemPrompt string
	Tools        func() []tool.BaseTool
}

var specialists = map[string]Specialist{
	consts.Agent_StockAnalyst: {
		Name:        consts.Agent_StockAnalyst,
		Description: "Specialist for stock analysis and equity research",
		SystemPrompt: "You are a professional stock analyst. Provide detailed analysis of individual stocks, " +
			"including price trends, fundamental metrics, and investment recommendations. " +
			"Always use the get_stock_price tool for current data and provide thoughtful analysis. " +
			"Always show calculations clearly. If the user mentions previous amounts or wants them in " +
			"another currency, acknowledge the amount explicitly.",
		Tools: func() []tool.BaseTool {
			return []tool.BaseTool{tools.NewStockPriceTool()}
		},
	},
	consts.Agent_PortfolioManager: {
		Name:        consts.Agent_PortfolioManager,
		Description: "Specialist for portfolio analysis and management",
		SystemPrompt: "You are a skilled portfolio manager. Analyze investment portfolios, calculate returns, " +
			"assess risk, and provide optimization recommendations. Use the analyze_portfolio, " +
			"calculate_returns and assess_risk tools for comprehensive analysis.",
		Tools: func() []tool.BaseTool {
			return []tool.BaseTool{tools.NewPortfolioTool(), tools.NewReturnsTool(), tools.NewRiskTool()}
		},
	},
	consts.Agent_MarketIntelligence: {
		Name:        consts.Agent_MarketIntelligence,
		Description: "Specialist for market news and trends",
		SystemPrompt: "You are a market intelligence expert. Provide the latest market news, trends, and " +
			"insights. Use the get_market_news tool to fetch current information and provide " +
			"context-rich analysis.",
		Tools: func() []tool.BaseTool {
			return []tool.BaseTool{tools.NewMarketNewsTool()}
		},
	},
	consts.Agent_CurrencySpecialist: {
		Name:        consts.Agent_CurrencySpecialist,
		Description: "Expert for currency conversion and international markets",
		SystemPrompt: "You are a currency and international markets specialist. Handle currency conversions " +
			"and global investment questions with the convert_currency tool. When the user provides " +
			"just an amount and a currency, resolve the missing side from the conversation context " +
			"and always show the calculation clearly.",
		Tools: func() []tool.BaseTool {
			return []tool.BaseTool{tools.NewCurrencyTool()}
		},
	},
	consts.Agent_Triage: {
		Name:        consts.Agent_Triage,
		Description: "General finance assistant",
		SystemPrompt: "You are a finance assistant. Answer financial questions using the available tools: " +
			"stock prices, market news, portfolio analysis, investment returns, risk assessment and " +
			"currency conversion. Keep answers concise and show calculations.",
		Tools: func() []tool.BaseTool {
			return []tool.BaseTool{
				tools.NewStockPriceTool(),
				tools.NewMarketNewsTool(),
				tools.NewPortfolioTool(),
				tools.NewReturnsTool(),
				tools.NewRiskTool(),
				tools.NewCurrencyTool(),
			}
		},
	},
}

// SpecialistFor returns the specialist registered under the given agent
// name, falling back to triage.
func SpecialistFor(name string) Specialist {
	if s, ok := specialists[name]; ok {
		return s
	}
	return specialists[consts.Agent_Triage]
}
