package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"riskscorer/internal/config"
	"riskscorer/internal/provider"
	"riskscorer/internal/types"

	"github.com/cenkalti/backoff/v4"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	statusOK        = "1"
	noTransfersText = "No transactions found"
	maxBodyBytes    = 4 << 20
	retryInterval   = 200 * time.Millisecond
)

var _ Provider = (*EtherscanClient)(nil)

// EtherscanClient queries the account/tokentx action of an Etherscan-style API.
type EtherscanClient struct {
	baseURL    string
	apiKey     string
	chainID    int64
	maxRetries uint64
	service    httpc.Service
}

type etherscanEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type etherscanTransfer struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Value     string `json:"value"`
	TimeStamp string `json:"timeStamp"`
	Hash      string `json:"hash"`
}

func NewEtherscanClient(c config.ExplorerConf) *EtherscanClient {
	cli := &http.Client{Timeout: c.Timeout}
	return &EtherscanClient{
		baseURL:    strings.TrimRight(c.BaseURL, "/"),
		apiKey:     c.APIKey,
		chainID:    c.ChainID,
		maxRetries: c.MaxRetries,
		service:    httpc.NewServiceWithClient("explorer:"+c.BaseURL, cli, provider.WithUserAgent),
	}
}

func (c *EtherscanClient) FetchTransfers(ctx context.Context, address string, limit int) ([]types.TransferRecord, error) {
	raw, err := c.FetchRawTransfers(ctx, address, limit)
	if err != nil {
		return nil, err
	}

	records := make([]types.TransferRecord, 0, len(raw))
	for _, item := range raw {
		var tx etherscanTransfer
		if err := jsonx.Unmarshal(item, &tx); err != nil {
			return nil, fmt.Errorf("%w: malformed transfer: %v", ErrProviderUnavailable, err)
		}
		records = append(records, types.TransferRecord{
			From:      tx.From,
			To:        tx.To,
			Value:     tx.Value,
			Timestamp: tx.TimeStamp,
			Hash:      tx.Hash,
		})
	}

	return records, nil
}

func (c *EtherscanClient) FetchRawTransfers(ctx context.Context, address string, limit int) ([]json.RawMessage, error) {
	logger := logx.WithContext(ctx)

	var raw []json.RawMessage
	op := func() error {
		var err error
		raw, err = c.fetchOnce(ctx, address, limit)
		if errors.Is(err, ErrNoTransfers) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInterval
	notify := func(err error, wait time.Duration) {
		logger.Infof("explorer retry for %s in %s: %v", address, wait, err)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx), notify)
	if err != nil {
		if !IsNoData(err) && !IsRejected(err) && !errors.Is(err, ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		logger.Errorf("explorer fetch failed for %s: %v", address, err)
		return nil, err
	}

	return raw, nil
}

func (c *EtherscanClient) fetchOnce(ctx context.Context, address string, limit int) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("chainid", strconv.FormatInt(c.chainID, 10))
	params.Set("module", "account")
	params.Set("action", "tokentx")
	params.Set("contractaddress", provider.NormalizeAddress(address))
	params.Set("page", "1")
	params.Set("offset", strconv.Itoa(limit))
	params.Set("sort", "desc")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	resp, err := c.service.DoRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrProviderUnavailable, err)
	}

	var envelope etherscanEnvelope
	if err := jsonx.Unmarshal(body, &envelope); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: malformed body: %v", ErrProviderUnavailable, err))
	}

	if envelope.Status != statusOK {
		if strings.Contains(envelope.Message, noTransfersText) {
			return nil, ErrNoTransfers
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamRejected, envelope.Message, string(envelope.Result))
	}

	var raw []json.RawMessage
	if err := jsonx.Unmarshal(envelope.Result, &raw); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: result is not a list: %v", ErrProviderUnavailable, err))
	}
	if len(raw) == 0 {
		return nil, ErrNoTransfers
	}

	return raw, nil
}
