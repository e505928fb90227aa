package consts

// Specialist agent names. The router hands a query to exactly one of these.
const (
	Agent_StockAnalyst       = "Stock Analyst"
	Agent_PortfolioManager   = "Portfolio Manager"
	Agent_MarketIntelligence = "Market Intelligence Analyst"
	Agent_CurrencySpecialist = "Currency Specialist"
	Agent_Triage             = "Finance Assistant"
)

// Message roles stored in a conversation transcript.
const (
	Role_User      = "user"
	Role_Assistant = "assistant"
	Role_System    = "system"
)
