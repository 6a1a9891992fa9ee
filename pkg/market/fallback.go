package market

// FallbackSymbols is the symbol universe scanned for movers when no list is
// configured. Large caps with liquid options coverage so quote data is always
// available.
var FallbackSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK.B",
	"JPM", "V", "UNH", "XOM", "JNJ", "WMT", "PG", "MA",
	"HD", "CVX", "MRK", "ABBV", "AVGO", "PEP", "KO", "COST",
	"ADBE", "CSCO", "CRM", "NFLX", "AMD", "INTC", "BA", "DIS",
}
