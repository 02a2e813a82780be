package handler

import (
	"net/http"
	"time"

	"riskscorer/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			// --- Risk Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/analyze-risk",
				Handler: AnalyzeRiskHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/analyze-portfolio",
				Handler: AnalyzePortfolioHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/transactions/:address/risks",
				Handler: TransactionRisksHandler(serverCtx),
			},
			// --- Data Routes ---
			{
				Method:  http.MethodGet,
				Path:    "/token/:address",
				Handler: TokenHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/blockchain/transfers",
				Handler: TransfersHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/ai/score",
				Handler: AIScoreHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/"),
		rest.WithTimeout(30000*time.Millisecond),
	)

	server.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: RootHandler(),
	})
}
