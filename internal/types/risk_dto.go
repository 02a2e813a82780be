package types

import "riskscorer/internal/constant"

// AnalyzeRiskReq is the body of POST /api/analyze-risk.
type AnalyzeRiskReq struct {
	Address string `json:"address"`
}

// RiskFactors holds five independent sub-scores. They are not clamped and
// may leave the 0-100 range.
type RiskFactors struct {
	LiquidityRisk          float64 `json:"liquidityRisk"`
	VolatilityRisk         float64 `json:"volatilityRisk"`
	ContractRisk           float64 `json:"contractRisk"`
	MarketManipulationRisk float64 `json:"marketManipulationRisk"`
	RugPullRisk            float64 `json:"rugPullRisk"`
}

// RiskScore is the per-address result. It is built fresh for every request.
type RiskScore struct {
	Address      string             `json:"address"`
	TokenSymbol  string             `json:"tokenSymbol"`
	TokenName    string             `json:"tokenName"`
	OverallScore int                `json:"overallScore"`
	RiskLevel    constant.RiskLevel `json:"riskLevel"`
	Factors      RiskFactors        `json:"factors"`
	AIInsights   []string           `json:"aiInsights"`
	// ISO-8601, UTC, millisecond precision.
	LastUpdated string  `json:"lastUpdated"`
	Confidence  float64 `json:"confidence"`
}

// AnalyzePortfolioReq is the body of POST /api/analyze-portfolio.
type AnalyzePortfolioReq struct {
	Addresses []string `json:"addresses"`
}

// RiskDistribution holds the share of each level, in percent.
type RiskDistribution struct {
	Low      float64 `json:"low"`
	Medium   float64 `json:"medium"`
	High     float64 `json:"high"`
	Critical float64 `json:"critical"`
}

type PortfolioRisk struct {
	// TotalValue is a placeholder proportional to the analysed address count.
	TotalValue       float64          `json:"totalValue"`
	AverageRisk      float64          `json:"averageRisk"`
	RiskDistribution RiskDistribution `json:"riskDistribution"`
	Recommendations  []string         `json:"recommendations"`
}
