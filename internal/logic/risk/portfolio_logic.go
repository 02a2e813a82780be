package risk

import (
	"context"
	"fmt"

	"riskscorer/internal/constant"
	"riskscorer/internal/errorx"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

const (
	placeholderValuePerAddress = 1000
	defaultPortfolioWorkers    = 8
)

// AnalyzePortfolioLogic 批量地址风险汇总
type AnalyzePortfolioLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAnalyzePortfolioLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzePortfolioLogic {
	return &AnalyzePortfolioLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// AnalyzePortfolio scores every address concurrently. An address that fails
// is left out of the aggregate instead of failing the batch.
func (l *AnalyzePortfolioLogic) AnalyzePortfolio(req *types.AnalyzePortfolioReq) (*types.PortfolioRisk, error) {
	if len(req.Addresses) == 0 {
		return nil, errorx.NewBadRequest("addresses is required", nil)
	}
	if limit := l.svcCtx.Config.Portfolio.MaxAddresses; limit > 0 && len(req.Addresses) > limit {
		return nil, errorx.NewBadRequest(fmt.Sprintf("at most %d addresses are allowed", limit), nil)
	}

	l.Infof("--- analyze-portfolio start, %d addresses ---", len(req.Addresses))

	results := make([]*types.RiskScore, len(req.Addresses))

	var g errgroup.Group
	g.SetLimit(l.workers())
	for i, address := range req.Addresses {
		g.Go(func() error {
			score, err := NewAnalyzeRiskLogic(l.ctx, l.svcCtx).AnalyzeRisk(&types.AnalyzeRiskReq{Address: address})
			if err != nil {
				l.Errorf("portfolio entry %d (%q) skipped: %v", i, address, err)
				return nil
			}
			results[i] = score
			return nil
		})
	}
	_ = g.Wait()

	resp := summarize(results)
	l.Infof("--- analyze-portfolio done, average risk: %.2f ---", resp.AverageRisk)

	return resp, nil
}

func (l *AnalyzePortfolioLogic) workers() int {
	if n := l.svcCtx.Config.Portfolio.MaxConcurrency; n > 0 {
		return n
	}
	return defaultPortfolioWorkers
}

// summarize aggregates over the non-nil entries only. Percentages are shares
// of the succeeded count.
func summarize(results []*types.RiskScore) *types.PortfolioRisk {
	var (
		succeeded int
		total     int
		counts    = make(map[constant.RiskLevel]int, len(constant.RiskLevels))
	)
	for _, r := range results {
		if r == nil {
			continue
		}
		succeeded++
		total += r.OverallScore
		counts[r.RiskLevel]++
	}

	resp := &types.PortfolioRisk{
		TotalValue:      float64(succeeded * placeholderValuePerAddress),
		Recommendations: append([]string(nil), constant.PortfolioRecommendations...),
	}
	if succeeded == 0 {
		return resp
	}

	share := func(level constant.RiskLevel) float64 {
		return float64(counts[level]) / float64(succeeded) * 100
	}
	resp.AverageRisk = float64(total) / float64(succeeded)
	resp.RiskDistribution = types.RiskDistribution{
		Low:      share(constant.RiskLow),
		Medium:   share(constant.RiskMedium),
		High:     share(constant.RiskHigh),
		Critical: share(constant.RiskCritical),
	}

	return resp
}
