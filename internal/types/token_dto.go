package types

// AddressPathReq binds the :address path segment.
type AddressPathReq struct {
	Address string `path:"address"`
}

// TokenMarketSnapshot is the normalised market-data view of a token. Numeric
// fields are zero, never missing, when the provider omits them.
type TokenMarketSnapshot struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	PriceUSD          float64 `json:"price"`
	MarketCapUSD      float64 `json:"marketCap"`
	Volume24hUSD      float64 `json:"volume24h"`
	PriceChange24hPct float64 `json:"priceChange24h"`
	LiquidityUSD      float64 `json:"liquidity"`
	Holders           int     `json:"holders"`
}

// TokenResp is the body of GET /api/token/:address.
type TokenResp struct {
	Address string `json:"address"`
	TokenMarketSnapshot
}
