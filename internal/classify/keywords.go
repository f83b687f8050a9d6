package classify

// Classification keyword tables (lowercase), ordered by specificity.
// Data, not logic.

var macroKeywords = []string{
	// Central banks
	"federal reserve", "central bank", "fomc", "monetary policy",
	"fed chair", "fed meeting", "fed decision", "fed minutes",
	"the fed", " fed ", "ecb", "boe", "boj", "rba", "pboc",
	// Economic indicators
	"inflation", "consumer price", "cpi", "pce", "deflation", "stagflation",
	"jobs report", "payrolls", "unemployment", "nonfarm", "jobless claims",
	"gdp", "gross domestic product", "economic growth", "economic data",
	"recession", "soft landing", "hard landing", "economic contraction",
	"retail sales", "consumer spending", "consumer confidence",
	"housing starts", "home sales", "housing market",
	"manufacturing", "industrial production", "factory orders",
	"ism", "pmi", "purchasing managers",
	// Rates and yields
	"rate hike", "rate cut", "interest rate", "basis points", "bps",
	"yield", "yields", "treasury", "treasuries", "bond market",
	"10-year", "2-year", "yield curve", "inverted curve",
	"dovish", "hawkish", "pivot", "pause",
	// Markets and indices
	"s&p 500", "dow jones", "nasdaq", "stock market", "wall street",
	"bull market", "bear market", "market rally", "market selloff",
	"volatility", "vix",
	// Currency and commodities
	"dollar index", "forex", "currency", "exchange rate",
	"oil price", "crude oil", "brent", "wti", "gold price",
	"commodities",
	// Other macro
	"trade deficit", "trade surplus", "current account", "tariff",
	"fiscal policy", "government spending", "stimulus", "debt ceiling",
	"quantitative easing", "qe", "tightening", "balance sheet",
}

var dealKeywords = []string{
	// M&A
	"merger", "mergers", "acquisition", "acquisitions",
	"acquires", "acquired", "acquiring", "to acquire", "to buy",
	"takeover", "takeout", "buyout", "buy out", "bought out",
	"lbo", "leveraged buyout", "management buyout",
	"bid for", "bidding war", "hostile bid", "friendly deal",
	// IPO and offerings
	"ipo", "initial public offering", "goes public", "going public",
	"public offering", "secondary offering", "stock offering", "share sale",
	"spac", "direct listing", "market debut", "stock debut",
	"files to go public", "ipo filing", "s-1 filing",
	// Corporate actions
	"spin-off", "spinoff", "spin off", "divestiture", "divest",
	"stake sale", "sells stake", "buys stake", "takes stake",
	"strategic review", "strategic alternatives", "explores sale",
	"private equity", " pe firm", "buyout firm",
	"venture capital", " vc ", "funding round", "series a", "series b", "series c",
	// Deal terms
	"deal value", "billion deal", "million deal", "purchase price",
	"all-cash", "all-stock", "cash and stock", "deal terms",
	"antitrust", "ftc", "doj review", "regulatory approval",
	// Restructuring
	"bankruptcy", "chapter 11", "restructuring", "creditors",
	"debt restructuring", "refinancing",
}
