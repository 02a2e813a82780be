package risk

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"riskscorer/internal/config"
	"riskscorer/internal/provider/explorer"
	"riskscorer/internal/provider/market"
	"riskscorer/internal/provider/narrative"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"
)

type fakeExplorer struct {
	transfers map[string][]types.TransferRecord
	calls     atomic.Int32
	onFetch   func()
}

func (f *fakeExplorer) FetchTransfers(ctx context.Context, address string, limit int) ([]types.TransferRecord, error) {
	f.calls.Add(1)
	if f.onFetch != nil {
		f.onFetch()
	}
	records, ok := f.transfers[address]
	if !ok {
		return nil, explorer.ErrProviderUnavailable
	}
	if len(records) == 0 {
		return nil, explorer.ErrNoTransfers
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (f *fakeExplorer) FetchRawTransfers(ctx context.Context, address string, limit int) ([]json.RawMessage, error) {
	records, err := f.FetchTransfers(ctx, address, limit)
	if err != nil {
		return nil, err
	}
	raw := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		b, _ := json.Marshal(r)
		raw = append(raw, b)
	}
	return raw, nil
}

type fakeMarket struct {
	snapshots map[string]types.TokenMarketSnapshot
	onFetch   func()
}

func (f *fakeMarket) FetchMarketSnapshot(ctx context.Context, address string) (*types.TokenMarketSnapshot, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	snap, ok := f.snapshots[address]
	if !ok {
		return nil, market.ErrNotFound
	}
	return &snap, nil
}

type fakeNarrative struct {
	text  string
	err   error
	calls atomic.Int32
}

func (f *fakeNarrative) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

var _ narrative.Provider = (*fakeNarrative)(nil)

func newTestServiceContext(ex *fakeExplorer, mk *fakeMarket, nr *fakeNarrative) *svc.ServiceContext {
	if ex == nil {
		ex = &fakeExplorer{}
	}
	if mk == nil {
		mk = &fakeMarket{}
	}
	if nr == nil {
		nr = &fakeNarrative{err: narrative.ErrProviderUnavailable}
	}

	return &svc.ServiceContext{
		Config: config.Config{
			Explorer:  config.ExplorerConf{Limit: 10},
			Portfolio: config.PortfolioConf{MaxConcurrency: 4, MaxAddresses: 5},
		},
		Explorer:  ex,
		Market:    mk,
		Narrative: nr,
	}
}

func makeTransfers(n int) []types.TransferRecord {
	records := make([]types.TransferRecord, n)
	for i := range records {
		records[i] = types.TransferRecord{
			From:      "0x1111111111111111111111111111111111111111",
			To:        "0x2222222222222222222222222222222222222222",
			Value:     "1000000",
			Timestamp: "1700000000",
			Hash:      "0xabc",
		}
	}
	return records
}
