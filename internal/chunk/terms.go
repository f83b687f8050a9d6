package chunk

// Lexical signal tables for paragraph scoring. Data, not logic: the scorer
// never changes when these are tuned.

var financialTerms = []string{
	"earnings", "revenue", "profit", "net income", "margin", "ebitda",
	"guidance", "forecast", "outlook", "estimate", "consensus",
	"valuation", "multiple", "price target",
	"dividend", "buyback", "free cash flow", "cash flow", "balance sheet",
	"rate hike", "rate cut", "interest rate", "basis points", "yield",
	"inflation", "gdp", "recession",
	"quarter", "fiscal year", "full-year", "year-over-year",
	"acquisition", "merger", "ipo", "stake",
	"upgrade", "downgrade", "analyst", "wall street",
	"shares", "stock", "market cap", "volatility",
	"treasury", "bond", "credit", "debt", "leverage",
}

var thesisPhrases = []string{
	"bottom line", "the upshot", "key takeaway", "takeaway",
	"we believe", "we think", "in our view", "our view",
	"key risk", "main risk", "the risk is",
	"catalyst", "inflection point",
	"this means", "what it means", "why it matters", "so what",
	"looking ahead", "going forward", "the big picture",
	"investors should", "expect to see",
}
