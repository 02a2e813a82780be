package risk

import (
	"context"
	"strings"
	"time"

	"riskscorer/internal/constant"
	"riskscorer/internal/errorx"
	"riskscorer/internal/provider/explorer"
	"riskscorer/internal/provider/narrative"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

const (
	activeInsightTxCount = 5

	confidenceWithMarketData = 85
	confidenceWithoutData    = 50

	lastUpdatedLayout = "2006-01-02T15:04:05.000Z"
)

// AnalyzeRiskLogic 单地址风险评估
type AnalyzeRiskLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

// NewAnalyzeRiskLogic 创建风险评估逻辑实例
func NewAnalyzeRiskLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzeRiskLogic {
	return &AnalyzeRiskLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// AnalyzeRisk never fails because a provider failed. Only a missing address
// is reported as an error.
func (l *AnalyzeRiskLogic) AnalyzeRisk(req *types.AnalyzeRiskReq) (*types.RiskScore, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, errorx.NewBadRequest("address is required", nil)
	}

	l.Infof("--- analyze-risk start, address: %s ---", address)

	var (
		transfers   []types.TransferRecord
		explorerErr error
		snapshot    *types.TokenMarketSnapshot
		marketErr   error
	)

	// 交易记录和行情并发获取, 两者都结束后再组装结果
	mr.FinishVoid(
		func() {
			transfers, explorerErr = l.svcCtx.Explorer.FetchTransfers(l.ctx, address, l.svcCtx.Config.Explorer.TransferLimit())
		},
		func() {
			snapshot, marketErr = l.svcCtx.Market.FetchMarketSnapshot(l.ctx, address)
		},
	)

	recentTxCount := 0
	switch {
	case explorer.IsNoData(explorerErr):
		l.Infof("no recent transfers for %s", address)
		transfers = nil
	case explorerErr != nil:
		l.Errorf("explorer degraded for %s: %v", address, explorerErr)
		transfers = nil
	default:
		recentTxCount = len(transfers)
	}
	if marketErr != nil {
		l.Infof("market data degraded for %s: %v", address, marketErr)
		snapshot = nil
	}

	assessment := Score(snapshot, recentTxCount)

	result := &types.RiskScore{
		Address:      address,
		TokenSymbol:  constant.UnknownTokenSymbol,
		TokenName:    constant.UnknownTokenName,
		OverallScore: assessment.OverallScore,
		RiskLevel:    assessment.RiskLevel,
		Factors:      assessment.Factors,
		AIInsights:   insightsFor(snapshot != nil, recentTxCount),
		LastUpdated:  time.Now().UTC().Format(lastUpdatedLayout),
		Confidence:   confidenceWithoutData,
	}
	if snapshot != nil {
		result.TokenSymbol = snapshot.Symbol
		result.TokenName = snapshot.Name
		result.Confidence = confidenceWithMarketData
	}

	if l.svcCtx.Config.Narrative.EnrichInsights && len(transfers) > 0 {
		if insight, ok := l.narrativeInsight(transfers); ok {
			result.AIInsights = append(result.AIInsights, insight)
		}
	}

	l.Infof("--- analyze-risk done, address: %s, score: %d, level: %s ---",
		address, result.OverallScore, result.RiskLevel)

	return result, nil
}

// narrativeInsight degrades silently: on this path the model text is extra.
func (l *AnalyzeRiskLogic) narrativeInsight(transfers []types.TransferRecord) (string, bool) {
	prompt, err := narrative.BuildPrompt(transfers)
	if err != nil {
		l.Errorf("failed to build narrative prompt: %v", err)
		return "", false
	}

	insight, err := l.svcCtx.Narrative.GenerateInsight(l.ctx, prompt)
	if err != nil {
		l.Infof("narrative insight skipped: %v", err)
		return "", false
	}
	return insight, true
}

func insightsFor(hasMarketData bool, recentTxCount int) []string {
	insights := make([]string, 0, 3)
	if hasMarketData {
		insights = append(insights, constant.InsightMarketDataFound)
	} else {
		insights = append(insights, constant.InsightMarketDataMissing)
	}
	if recentTxCount >= activeInsightTxCount {
		insights = append(insights, constant.InsightActiveTransfers)
	} else {
		insights = append(insights, constant.InsightLimitedTransfers)
	}
	return insights
}
