package handler

import (
	"net/http"

	"riskscorer/internal/errorx"
	"riskscorer/internal/logic/risk"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// AnalyzeRiskHandler 单地址风险评分
func AnalyzeRiskHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AnalyzeRiskReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request body: %v", err)
			httpx.ErrorCtx(r.Context(), w, errorx.NewBadRequest("address is required", err))
			return
		}

		l := risk.NewAnalyzeRiskLogic(r.Context(), svcCtx)
		resp, err := l.AnalyzeRisk(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, asInternal(err, "Failed to analyze risk"))
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// AnalyzePortfolioHandler 批量地址风险汇总
func AnalyzePortfolioHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AnalyzePortfolioReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request body: %v", err)
			httpx.ErrorCtx(r.Context(), w, errorx.NewBadRequest("addresses is required", err))
			return
		}

		l := risk.NewAnalyzePortfolioLogic(r.Context(), svcCtx)
		resp, err := l.AnalyzePortfolio(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, asInternal(err, "Failed to analyze portfolio"))
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func TransactionRisksHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddressPathReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.NewBadRequest("address is required", err))
			return
		}

		l := risk.NewTransactionRisksLogic(r.Context(), svcCtx)
		resp, err := l.TransactionRisks(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
