// Package market looks up token market data by contract address.
package market

import (
	"context"
	"errors"

	"riskscorer/internal/types"
)

// ErrNotFound is returned for every failure mode: non-2xx, timeout, transport
// error or an unreadable body. Callers treat them all as "no market data".
var ErrNotFound = errors.New("market: no data for token")

type Provider interface {
	FetchMarketSnapshot(ctx context.Context, address string) (*types.TokenMarketSnapshot, error)
}
