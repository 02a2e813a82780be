package constant

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels lists every level in ascending order of severity.
var RiskLevels = []RiskLevel{
	RiskLow,
	RiskMedium,
	RiskHigh,
	RiskCritical,
}

// Upper bounds (inclusive) of the first three buckets. Anything above
// highMaxScore is critical.
const (
	lowMaxScore    = 25
	mediumMaxScore = 50
	highMaxScore   = 75
)

// LevelForScore buckets a 0-100 score. Both the per-address and the
// per-transaction scoring paths use it.
func LevelForScore(score int) RiskLevel {
	switch {
	case score <= lowMaxScore:
		return RiskLow
	case score <= mediumMaxScore:
		return RiskMedium
	case score <= highMaxScore:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// IsRiskLevel checks if a given string is one of the known levels.
func IsRiskLevel(level string) bool {
	for _, l := range RiskLevels {
		if string(l) == level {
			return true
		}
	}
	return false
}
