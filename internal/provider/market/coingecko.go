package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"riskscorer/internal/config"
	"riskscorer/internal/numeric"
	"riskscorer/internal/provider"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	apiKeyHeader   = "x-cg-demo-api-key"
	fallbackSymbol = "N/A"
	fallbackName   = "Unknown"
	maxBodyBytes   = 4 << 20
)

var _ Provider = (*CoinGeckoClient)(nil)

// CoinGeckoClient resolves /coins/{platform}/contract/{address}.
type CoinGeckoClient struct {
	baseURL  string
	platform string
	apiKey   string
	service  httpc.Service
}

func NewCoinGeckoClient(c config.MarketConf) *CoinGeckoClient {
	cli := &http.Client{Timeout: c.Timeout}
	return &CoinGeckoClient{
		baseURL:  strings.TrimRight(c.BaseURL, "/"),
		platform: c.Platform,
		apiKey:   c.APIKey,
		service:  httpc.NewServiceWithClient("market:"+c.BaseURL, cli, provider.WithUserAgent),
	}
}

func (c *CoinGeckoClient) FetchMarketSnapshot(ctx context.Context, address string) (*types.TokenMarketSnapshot, error) {
	logger := logx.WithContext(ctx)

	snapshot, err := c.fetch(ctx, address)
	if err != nil {
		logger.Infof("market lookup failed for %s: %v", address, err)
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return snapshot, nil
}

func (c *CoinGeckoClient) fetch(ctx context.Context, address string) (*types.TokenMarketSnapshot, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/contract/%s", c.baseURL,
		url.PathEscape(c.platform), url.PathEscape(provider.NormalizeAddress(address)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.service.DoRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var doc map[string]any
	if err := jsonx.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("malformed body: %w", err)
	}

	return snapshotFromDocument(doc), nil
}

// snapshotFromDocument maps a coin document onto the snapshot. Every numeric
// field goes through numeric.ToFloat so missing or odd values become 0.
func snapshotFromDocument(doc map[string]any) *types.TokenMarketSnapshot {
	symbol := strings.ToUpper(stringField(doc, "symbol"))
	if symbol == "" {
		symbol = fallbackSymbol
	}
	name := stringField(doc, "name")
	if name == "" {
		name = fallbackName
	}

	marketData, _ := doc["market_data"].(map[string]any)
	volume := numeric.ToFloat(usdField(marketData, "total_volume"), 0)

	return &types.TokenMarketSnapshot{
		Symbol:            symbol,
		Name:              name,
		PriceUSD:          numeric.ToFloat(usdField(marketData, "current_price"), 0),
		MarketCapUSD:      numeric.ToFloat(usdField(marketData, "market_cap"), 0),
		Volume24hUSD:      volume,
		PriceChange24hPct: numeric.ToFloat(marketData["price_change_percentage_24h"], 0),
		// CoinGecko has no liquidity figure; 24h volume stands in for it.
		LiquidityUSD: volume,
		Holders:      0,
	}
}

func stringField(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return strings.TrimSpace(s)
}

func usdField(marketData map[string]any, key string) any {
	quotes, ok := marketData[key].(map[string]any)
	if !ok {
		return nil
	}
	return quotes["usd"]
}
