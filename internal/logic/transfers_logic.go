package logic

import (
	"context"
	"encoding/json"
	"errors"

	"riskscorer/internal/errorx"
	"riskscorer/internal/provider/explorer"
	"riskscorer/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

var errTokenContractNotSet = errors.New("explorer token contract is not configured")

// TransfersLogic serves the legacy pass-through of the configured contract's
// raw transfer list.
type TransfersLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTransfersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TransfersLogic {
	return &TransfersLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Transfers answers 404 when the upstream replied without transfers (empty or
// non-success envelope) and 500 when it could not be reached or read.
func (l *TransfersLogic) Transfers() ([]json.RawMessage, error) {
	conf := l.svcCtx.Config.Explorer
	if conf.TokenContract == "" {
		return nil, errorx.NewInternal("Server error", errTokenContractNotSet)
	}

	raw, err := l.svcCtx.Explorer.FetchRawTransfers(l.ctx, conf.TokenContract, conf.TransferLimit())
	switch {
	case err == nil:
		return raw, nil
	case explorer.IsNoData(err), explorer.IsRejected(err):
		return nil, errorx.NewNotFound("No transactions found", err)
	default:
		return nil, errorx.NewInternal("Server error", err)
	}
}
