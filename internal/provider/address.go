// Package provider holds helpers shared by the upstream data clients.
package provider

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const userAgent = "riskscorer/1.0"

// NormalizeAddress lowercases hex account addresses so lookups do not depend
// on checksum casing. Anything that is not a hex address is only trimmed.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return address
}

// WithUserAgent is an httpc option tagging outbound requests.
func WithUserAgent(r *http.Request) *http.Request {
	r.Header.Set("User-Agent", userAgent)
	return r
}
