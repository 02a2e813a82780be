package risk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"riskscorer/internal/constant"
	"riskscorer/internal/errorx"
	"riskscorer/internal/types"
)

const tokenAddress = "0xAAA0000000000000000000000000000000000001"

func TestAnalyzeRiskRoundTrip(t *testing.T) {
	svcCtx := newTestServiceContext(
		&fakeExplorer{transfers: map[string][]types.TransferRecord{tokenAddress: makeTransfers(9)}},
		&fakeMarket{snapshots: map[string]types.TokenMarketSnapshot{tokenAddress: {
			Symbol:            "AAA",
			Name:              "Triple A",
			MarketCapUSD:      2e9,
			Volume24hUSD:      6e7,
			PriceChange24hPct: 3.0,
		}}},
		nil,
	)

	resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.OverallScore != 5 {
		t.Errorf("expected score 5, got %d", resp.OverallScore)
	}
	if resp.RiskLevel != constant.RiskLow {
		t.Errorf("expected low, got %s", resp.RiskLevel)
	}
	if resp.Factors.VolatilityRisk != 6.0 {
		t.Errorf("expected volatility 6, got %v", resp.Factors.VolatilityRisk)
	}
	if resp.TokenSymbol != "AAA" || resp.TokenName != "Triple A" {
		t.Errorf("unexpected token identity %s / %s", resp.TokenSymbol, resp.TokenName)
	}
	if resp.Confidence != 85 {
		t.Errorf("expected confidence 85, got %v", resp.Confidence)
	}
	wantInsights := []string{constant.InsightMarketDataFound, constant.InsightActiveTransfers}
	if len(resp.AIInsights) != len(wantInsights) {
		t.Fatalf("expected %d insights, got %v", len(wantInsights), resp.AIInsights)
	}
	for i := range wantInsights {
		if resp.AIInsights[i] != wantInsights[i] {
			t.Errorf("insight %d: expected %q, got %q", i, wantInsights[i], resp.AIInsights[i])
		}
	}
	if resp.Address != tokenAddress {
		t.Errorf("expected address to be echoed, got %s", resp.Address)
	}
}

func TestAnalyzeRiskAllProvidersDown(t *testing.T) {
	svcCtx := newTestServiceContext(nil, nil, nil)

	resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: "0xdead"})
	if err != nil {
		t.Fatalf("expected degraded result, got %v", err)
	}

	// 80 base, +5 because no transfers were seen.
	if resp.OverallScore != 85 || resp.RiskLevel != constant.RiskCritical {
		t.Errorf("expected 85/critical, got %d/%s", resp.OverallScore, resp.RiskLevel)
	}
	if resp.Confidence != 50 {
		t.Errorf("expected confidence 50, got %v", resp.Confidence)
	}
	if resp.TokenSymbol != constant.UnknownTokenSymbol || resp.TokenName != constant.UnknownTokenName {
		t.Errorf("expected unknown token, got %s / %s", resp.TokenSymbol, resp.TokenName)
	}
	if resp.Factors.ContractRisk != 80 || resp.Factors.RugPullRisk != 70 {
		t.Errorf("unexpected factors %+v", resp.Factors)
	}
	if len(resp.AIInsights) != 2 ||
		resp.AIInsights[0] != constant.InsightMarketDataMissing ||
		resp.AIInsights[1] != constant.InsightLimitedTransfers {
		t.Errorf("unexpected insights %v", resp.AIInsights)
	}

	ts, err := time.Parse(time.RFC3339Nano, resp.LastUpdated)
	if err != nil {
		t.Fatalf("expected RFC3339 lastUpdated, got %q: %v", resp.LastUpdated, err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("lastUpdated too old: %s", resp.LastUpdated)
	}
}

func TestAnalyzeRiskEmptyHistoryCountsAsZero(t *testing.T) {
	svcCtx := newTestServiceContext(
		&fakeExplorer{transfers: map[string][]types.TransferRecord{tokenAddress: {}}},
		nil, nil,
	)

	resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.OverallScore != 85 {
		t.Errorf("expected 85, got %d", resp.OverallScore)
	}
}

func TestAnalyzeRiskMissingAddress(t *testing.T) {
	svcCtx := newTestServiceContext(nil, nil, nil)

	for _, address := range []string{"", "   "} {
		resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: address})
		if resp != nil {
			t.Errorf("expected no result for %q, got %+v", address, resp)
		}

		var codeErr *errorx.CodeError
		if !errors.As(err, &codeErr) || codeErr.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %q, got %v", address, err)
		}
	}
}

func TestAnalyzeRiskFetchesConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	bothStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(bothStarted)
	}()

	wait := func() {
		started.Done()
		select {
		case <-bothStarted:
		case <-time.After(2 * time.Second):
			t.Error("providers were not called concurrently")
		}
	}

	svcCtx := newTestServiceContext(
		&fakeExplorer{transfers: map[string][]types.TransferRecord{tokenAddress: makeTransfers(3)}, onFetch: wait},
		&fakeMarket{snapshots: map[string]types.TokenMarketSnapshot{}, onFetch: wait},
		nil,
	)

	if _, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAnalyzeRiskNarrativeEnrichment(t *testing.T) {
	ex := &fakeExplorer{transfers: map[string][]types.TransferRecord{tokenAddress: makeTransfers(6)}}

	t.Run("disabled by config", func(t *testing.T) {
		nr := &fakeNarrative{text: "Mostly low risk."}
		svcCtx := newTestServiceContext(ex, nil, nr)

		resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(resp.AIInsights) != 2 {
			t.Errorf("expected 2 insights, got %v", resp.AIInsights)
		}
		if nr.calls.Load() != 0 {
			t.Errorf("expected narrative provider to be skipped, got %d calls", nr.calls.Load())
		}
	})

	t.Run("appends completion", func(t *testing.T) {
		nr := &fakeNarrative{text: "Mostly low risk."}
		svcCtx := newTestServiceContext(ex, nil, nr)
		svcCtx.Config.Narrative.EnrichInsights = true

		resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(resp.AIInsights) != 3 || resp.AIInsights[2] != "Mostly low risk." {
			t.Errorf("expected narrative insight appended, got %v", resp.AIInsights)
		}
	})

	t.Run("failure degrades", func(t *testing.T) {
		nr := &fakeNarrative{err: errors.New("quota exceeded")}
		svcCtx := newTestServiceContext(ex, nil, nr)
		svcCtx.Config.Narrative.EnrichInsights = true

		resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
		if err != nil {
			t.Fatalf("expected narrative failure to be absorbed, got %v", err)
		}
		if len(resp.AIInsights) != 2 {
			t.Errorf("expected 2 insights, got %v", resp.AIInsights)
		}
		if nr.calls.Load() != 1 {
			t.Errorf("expected one narrative call, got %d", nr.calls.Load())
		}
	})
}

func TestAnalyzeRiskRespectsTransferLimit(t *testing.T) {
	ex := &fakeExplorer{transfers: map[string][]types.TransferRecord{tokenAddress: makeTransfers(20)}}
	svcCtx := newTestServiceContext(ex, nil, nil)
	svcCtx.Config.Explorer.Limit = 4

	resp, err := NewAnalyzeRiskLogic(context.Background(), svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: tokenAddress})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// 4 transfers: no activity nudge either way, and below the "active" insight threshold.
	if resp.OverallScore != 80 {
		t.Errorf("expected 80, got %d", resp.OverallScore)
	}
	if resp.AIInsights[1] != constant.InsightLimitedTransfers {
		t.Errorf("expected limited-activity insight, got %q", resp.AIInsights[1])
	}
}
