package risk

import (
	"context"

	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type TransactionRisksLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTransactionRisksLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TransactionRisksLogic {
	return &TransactionRisksLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// TransactionRisks is not implemented yet and always answers with an empty
// list so clients can render the table.
// TODO: score each transfer from Explorer.FetchTransfers with constant.LevelForScore.
func (l *TransactionRisksLogic) TransactionRisks(req *types.AddressPathReq) ([]types.TransactionRisk, error) {
	l.Infof("transaction risks requested for %s", req.Address)
	return []types.TransactionRisk{}, nil
}
