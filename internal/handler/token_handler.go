package handler

import (
	"errors"
	"net/http"

	"riskscorer/internal/errorx"
	"riskscorer/internal/logic"
	"riskscorer/internal/svc"
	"riskscorer/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

const rootMessage = "On-Chain Risk Scorer API is running..."

// TokenHandler 代币行情
func TokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddressPathReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.NewBadRequest("address is required", err))
			return
		}

		l := logic.NewTokenLogic(r.Context(), svcCtx)
		resp, err := l.Token(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, asInternal(err, "Failed to fetch token data"))
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// TransfersHandler is the legacy raw transfer list of the configured contract.
func TransfersHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewTransfersLogic(r.Context(), svcCtx)
		resp, err := l.Transfers()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, asInternal(err, "Server error"))
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// AIScoreHandler 大模型风险分析
func AIScoreHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AIScoreReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.NewBadRequest("No transactions provided", err))
			return
		}

		l := logic.NewAIScoreLogic(r.Context(), svcCtx)
		resp, err := l.AIScore(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, asInternal(err, "Failed to score risk"))
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(rootMessage))
	}
}

// asInternal keeps CodeErrors as they are and hides anything else behind a
// route specific 500 message.
func asInternal(err error, message string) error {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		return err
	}
	return errorx.NewInternal(message, err)
}
