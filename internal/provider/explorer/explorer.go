// Package explorer fetches recent token transfers for an address.
package explorer

import (
	"context"
	"encoding/json"
	"errors"

	"riskscorer/internal/types"
)

var (
	// ErrNoTransfers means the upstream answered but had nothing for the address.
	ErrNoTransfers = errors.New("explorer: no transfers found")
	// ErrUpstreamRejected means the upstream answered with a non-success
	// envelope, e.g. an invalid key or a rate limit.
	ErrUpstreamRejected = errors.New("explorer: request rejected by upstream")
	// ErrProviderUnavailable covers transport failures, timeouts, non-200
	// statuses and malformed bodies.
	ErrProviderUnavailable = errors.New("explorer: provider unavailable")
)

// Provider is implemented by every transfer-history backend. Implementations
// return only ErrNoTransfers, ErrUpstreamRejected or ErrProviderUnavailable
// (possibly wrapped).
type Provider interface {
	// FetchTransfers returns up to limit transfers, newest first.
	FetchTransfers(ctx context.Context, address string, limit int) ([]types.TransferRecord, error)
	// FetchRawTransfers returns the upstream records untouched.
	FetchRawTransfers(ctx context.Context, address string, limit int) ([]json.RawMessage, error)
}

// IsNoData reports whether err is the "answered but empty" case.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoTransfers)
}

// IsRejected reports whether the upstream answered with a non-success envelope.
func IsRejected(err error) bool {
	return errors.Is(err, ErrUpstreamRejected)
}
