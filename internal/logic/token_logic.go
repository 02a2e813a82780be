package logic

import (
	"context"
	"strings"

	"riskscorer/internal/errorx"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// TokenLogic 代币行情查询
type TokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TokenLogic {
	return &TokenLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *TokenLogic) Token(req *types.AddressPathReq) (*types.TokenResp, error) {
	address := strings.TrimSpace(req.Address)

	snapshot, err := l.svcCtx.Market.FetchMarketSnapshot(l.ctx, address)
	if err != nil || snapshot == nil {
		return nil, errorx.NewNotFound("Token not found on CoinGecko", err)
	}

	return &types.TokenResp{
		Address:             address,
		TokenMarketSnapshot: *snapshot,
	}, nil
}
