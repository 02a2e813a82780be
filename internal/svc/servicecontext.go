package svc

import (
	"log"

	"riskscorer/internal/config"
	"riskscorer/internal/provider/explorer"
	"riskscorer/internal/provider/market"
	"riskscorer/internal/provider/narrative"
)

// ServiceContext carries the provider clients. Logic code only sees the
// interfaces, so tests swap in fakes without touching the environment.
type ServiceContext struct {
	Config    config.Config
	Explorer  explorer.Provider
	Market    market.Provider
	Narrative narrative.Provider
}

func NewServiceContext(c config.Config) *ServiceContext {
	explorerClient, err := newExplorer(c.Explorer)
	if err != nil {
		log.Fatalf("failed to init explorer: %v", err)
	}

	return &ServiceContext{
		Config:    c,
		Explorer:  explorerClient,
		Market:    market.NewCoinGeckoClient(c.Market),
		Narrative: narrative.NewOpenAIClient(c.Narrative),
	}
}

// 根据配置选择交易记录来源
func newExplorer(c config.ExplorerConf) (explorer.Provider, error) {
	switch c.Backend {
	case config.ExplorerBackendRPC:
		return explorer.NewRPCClient(c.RpcUrl, c.LookbackBlocks, c.Timeout)
	default:
		return explorer.NewEtherscanClient(c), nil
	}
}
