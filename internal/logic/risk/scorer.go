package risk

import (
	"math"

	"riskscorer/internal/constant"
	"riskscorer/internal/types"
)

const (
	noDataBaseScore = 80

	activeTxThreshold = 8
	quietTxThreshold  = 1
	activityNudge     = 5

	highVolumeUSD    = 5e7
	lowVolumeUSD     = 5e5
	volumeAdjustment = 10

	thinVolumeUSD = 2.5e5
)

// marketCapBands maps a lower market-cap bound (exclusive) to a base score.
var marketCapBands = []struct {
	above float64
	base  int
}{
	{1e9, 20},
	{1e8, 35},
	{1e7, 50},
}

const smallCapBaseScore = 65

// Assessment is the numeric part of a RiskScore.
type Assessment struct {
	OverallScore int
	RiskLevel    constant.RiskLevel
	Factors      types.RiskFactors
}

// Score is the heuristic scorer. snapshot is nil when the market provider had
// nothing; recentTxCount is 0 when the explorer failed. It does no I/O.
func Score(snapshot *types.TokenMarketSnapshot, recentTxCount int) Assessment {
	base := noDataBaseScore
	if snapshot != nil {
		base = baseForMarketCap(snapshot.MarketCapUSD)

		switch {
		case snapshot.Volume24hUSD > highVolumeUSD:
			base -= volumeAdjustment
		case snapshot.Volume24hUSD < lowVolumeUSD:
			base += volumeAdjustment
		}
	}

	// 链上活跃度, 与行情数据无关
	if recentTxCount >= activeTxThreshold {
		base -= activityNudge
	}
	if recentTxCount <= quietTxThreshold {
		base += activityNudge
	}

	overall := clamp(base, 0, 100)
	return Assessment{
		OverallScore: overall,
		RiskLevel:    constant.LevelForScore(overall),
		Factors:      factorsFor(snapshot),
	}
}

func baseForMarketCap(marketCap float64) int {
	for _, band := range marketCapBands {
		if marketCap > band.above {
			return band.base
		}
	}
	return smallCapBaseScore
}

// factorsFor derives the sub-scores straight from market data. They are
// not clamped.
func factorsFor(snapshot *types.TokenMarketSnapshot) types.RiskFactors {
	var volume, priceChange float64
	hasData := snapshot != nil
	if hasData {
		volume = snapshot.Volume24hUSD
		priceChange = snapshot.PriceChange24hPct
	}

	factors := types.RiskFactors{
		LiquidityRisk:          100 - math.Min(100, volume/1e6*20),
		VolatilityRisk:         math.Abs(priceChange) * 2,
		ContractRisk:           80,
		MarketManipulationRisk: 30,
		RugPullRisk:            70,
	}
	if hasData {
		factors.ContractRisk = 40
		factors.RugPullRisk = 30
	}
	if volume < thinVolumeUSD {
		factors.MarketManipulationRisk = 70
	}

	return factors
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
