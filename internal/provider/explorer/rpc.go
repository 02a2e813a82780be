package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"riskscorer/internal/types"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zeromicro/go-zero/core/logx"
)

// TransferEventSignature is Transfer(address,address,uint256).
var TransferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

var _ Provider = (*RPCClient)(nil)

// chainReader is the subset of ethclient.Client the RPC backend needs.
type chainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]evmTypes.Log, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*evmTypes.Header, error)
}

// RPCClient reads ERC-20 Transfer logs of a contract straight from a node.
type RPCClient struct {
	reader   chainReader
	lookback uint64
	timeout  time.Duration
}

// NewRPCClient dials rpcURL. HTTP endpoints are dialled lazily, so a node that
// is down only surfaces as ErrProviderUnavailable at request time.
func NewRPCClient(rpcURL string, lookback uint64, timeout time.Duration) (*RPCClient, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc %s: %w", rpcURL, err)
	}
	return newRPCClient(client, lookback, timeout), nil
}

func newRPCClient(reader chainReader, lookback uint64, timeout time.Duration) *RPCClient {
	return &RPCClient{
		reader:   reader,
		lookback: lookback,
		timeout:  timeout,
	}
}

func (c *RPCClient) FetchTransfers(ctx context.Context, address string, limit int) ([]types.TransferRecord, error) {
	logger := logx.WithContext(ctx)

	if limit <= 0 {
		return nil, ErrNoTransfers
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q is not a contract address", ErrProviderUnavailable, address)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	head, err := c.reader.BlockNumber(ctx)
	if err != nil {
		logger.Errorf("rpc block number failed: %v", err)
		return nil, fmt.Errorf("%w: block number: %v", ErrProviderUnavailable, err)
	}

	var from uint64
	if head > c.lookback {
		from = head - c.lookback
	}

	logs, err := c.reader.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: []common.Address{common.HexToAddress(address)},
		Topics:    [][]common.Hash{{TransferEventSignature}},
	})
	if err != nil {
		logger.Errorf("rpc filter logs failed for %s: %v", address, err)
		return nil, fmt.Errorf("%w: filter logs: %v", ErrProviderUnavailable, err)
	}

	blockTimes := make(map[uint64]uint64)
	records := make([]types.TransferRecord, 0, limit)
	// Logs come back oldest first.
	for i := len(logs) - 1; i >= 0 && len(records) < limit; i-- {
		vLog := logs[i]
		record, ok := parseTransferLog(vLog)
		if !ok {
			continue
		}

		ts, seen := blockTimes[vLog.BlockNumber]
		if !seen {
			header, err := c.reader.HeaderByNumber(ctx, new(big.Int).SetUint64(vLog.BlockNumber))
			if err != nil {
				return nil, fmt.Errorf("%w: header %d: %v", ErrProviderUnavailable, vLog.BlockNumber, err)
			}
			ts = header.Time
			blockTimes[vLog.BlockNumber] = ts
		}
		record.Timestamp = strconv.FormatUint(ts, 10)

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrNoTransfers
	}
	return records, nil
}

func (c *RPCClient) FetchRawTransfers(ctx context.Context, address string, limit int) ([]json.RawMessage, error) {
	records, err := c.FetchTransfers(ctx, address, limit)
	if err != nil {
		return nil, err
	}

	raw := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		raw = append(raw, b)
	}
	return raw, nil
}

// parseTransferLog decodes an ERC-20 Transfer. ERC-721 transfers carry the
// token id as a fourth topic and no data, so they are rejected.
func parseTransferLog(vLog evmTypes.Log) (types.TransferRecord, bool) {
	if vLog.Removed || len(vLog.Topics) != 3 || len(vLog.Data) != 32 {
		return types.TransferRecord{}, false
	}
	if vLog.Topics[0] != TransferEventSignature {
		return types.TransferRecord{}, false
	}

	return types.TransferRecord{
		From:  common.BytesToAddress(vLog.Topics[1].Bytes()).Hex(),
		To:    common.BytesToAddress(vLog.Topics[2].Bytes()).Hex(),
		Value: new(big.Int).SetBytes(vLog.Data).String(),
		Hash:  vLog.TxHash.Hex(),
	}, true
}
