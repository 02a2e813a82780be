package types

// TransferRecord is one token transfer as reported by the explorer. Ordering
// of a batch is whatever the provider returned.
type TransferRecord struct {
	From  string `json:"from,optional"`
	To    string `json:"to,optional"`
	Value string `json:"value,optional"` // decimal string, base units
	// Unix seconds as a decimal string.
	Timestamp string `json:"timestamp,optional"`
	Hash      string `json:"hash,optional"`
}

// TransactionRisk scores a single transfer of an address.
type TransactionRisk struct {
	Hash        string   `json:"hash"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Value       float64  `json:"value"`
	RiskScore   float64  `json:"riskScore"`
	RiskFactors []string `json:"riskFactors"`
	Timestamp   int64    `json:"timestamp"`
}

// AIScoreReq is the body of POST /api/ai/score.
type AIScoreReq struct {
	Transactions []TransferRecord `json:"transactions,optional"`
}

type AIScoreResp struct {
	RiskAnalysis string `json:"riskAnalysis"`
}
