package constant

const (
	InsightMarketDataFound   = "Live market data found from CoinGecko."
	InsightMarketDataMissing = "No market data found; treat with caution."
	InsightActiveTransfers   = "Active on-chain token transfers recently."
	InsightLimitedTransfers  = "Limited recent token transfer activity."

	UnknownTokenSymbol = "UNKNOWN"
	UnknownTokenName   = "Unknown Token"
)

// PortfolioRecommendations are returned verbatim for every portfolio.
var PortfolioRecommendations = []string{
	"Diversify into assets with lower risk scores.",
	"Set alerts for unusual volume spikes.",
	"Revisit assets with limited market data.",
}
