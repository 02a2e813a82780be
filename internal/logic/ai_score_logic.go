package logic

import (
	"context"

	"riskscorer/internal/errorx"
	"riskscorer/internal/provider/narrative"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// AIScoreLogic 调用大模型对交易批次做风险分类
type AIScoreLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAIScoreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AIScoreLogic {
	return &AIScoreLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// AIScore surfaces narrative failures as a 500. It is the one route where the
// model text is the whole answer.
func (l *AIScoreLogic) AIScore(req *types.AIScoreReq) (*types.AIScoreResp, error) {
	if len(req.Transactions) == 0 {
		return nil, errorx.NewBadRequest("No transactions provided", nil)
	}

	prompt, err := narrative.BuildPrompt(req.Transactions)
	if err != nil {
		return nil, errorx.NewInternal("Failed to score risk", err)
	}

	l.Infof("scoring %d transactions with the narrative model", len(req.Transactions))
	analysis, err := l.svcCtx.Narrative.GenerateInsight(l.ctx, prompt)
	if err != nil {
		return nil, errorx.NewInternal("Failed to score risk", err)
	}

	return &types.AIScoreResp{RiskAnalysis: analysis}, nil
}
