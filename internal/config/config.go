package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"
)

const (
	ExplorerBackendEtherscan = "etherscan"
	ExplorerBackendRPC       = "rpc"

	DefaultTransferLimit = 10
)

// ExplorerConf configures the transfer-history provider.
type ExplorerConf struct {
	Backend string `json:",default=etherscan,options=etherscan|rpc"`
	BaseURL string `json:",default=https://api.etherscan.io/v2/api"`
	ChainID int64  `json:",default=1"`
	APIKey  string `json:",optional"`
	// TokenContract is the contract served by the legacy /blockchain/transfers route.
	TokenContract  string        `json:",optional"`
	Limit          int           `json:",default=10"`
	RpcUrl         string        `json:",optional"`
	LookbackBlocks uint64        `json:",default=5000"`
	Timeout        time.Duration `json:",default=8s"`
	MaxRetries     uint64        `json:",default=0"`
}

// TransferLimit is Limit, or DefaultTransferLimit when Limit is unset.
func (c ExplorerConf) TransferLimit() int {
	if c.Limit > 0 {
		return c.Limit
	}
	return DefaultTransferLimit
}

// MarketConf configures the price-aggregator provider.
type MarketConf struct {
	BaseURL  string        `json:",default=https://api.coingecko.com/api/v3"`
	Platform string        `json:",default=ethereum"`
	APIKey   string        `json:",optional"`
	Timeout  time.Duration `json:",default=8s"`
}

// NarrativeConf configures the text-completion provider. An empty APIKey
// disables the provider without failing startup.
type NarrativeConf struct {
	APIKey         string        `json:",optional"`
	BaseURL        string        `json:",optional"`
	Model          string        `json:",default=gpt-4o-mini"`
	MaxTokens      int           `json:",default=200"`
	Timeout        time.Duration `json:",default=20s"`
	EnrichInsights bool          `json:",default=false"`
}

type PortfolioConf struct {
	MaxConcurrency int `json:",default=8"`
	MaxAddresses   int `json:",default=50"`
}

type Config struct {
	rest.RestConf
	CorsOrigins []string `json:",optional"`
	Explorer    ExplorerConf
	Market      MarketConf
	Narrative   NarrativeConf
	Portfolio   PortfolioConf
}
