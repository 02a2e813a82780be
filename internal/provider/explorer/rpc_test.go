package explorer

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
)

type fakeChain struct {
	head       uint64
	logs       []evmTypes.Log
	headErr    error
	filterErr  error
	query      ethereum.FilterQuery
	headerHits int
}

func (f *fakeChain) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, f.headErr
}

func (f *fakeChain) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]evmTypes.Log, error) {
	f.query = q
	return f.logs, f.filterErr
}

func (f *fakeChain) HeaderByNumber(ctx context.Context, number *big.Int) (*evmTypes.Header, error) {
	f.headerHits++
	return &evmTypes.Header{Number: number, Time: 1_700_000_000 + number.Uint64()}, nil
}

func transferLog(block uint64, from, to string, amount int64, txHash string) evmTypes.Log {
	return evmTypes.Log{
		BlockNumber: block,
		TxHash:      common.HexToHash(txHash),
		Topics: []common.Hash{
			TransferEventSignature,
			common.BytesToHash(common.HexToAddress(from).Bytes()),
			common.BytesToHash(common.HexToAddress(to).Bytes()),
		},
		Data: common.LeftPadBytes(big.NewInt(amount).Bytes(), 32),
	}
}

func TestRPCFetchTransfersNewestFirst(t *testing.T) {
	chain := &fakeChain{
		head: 10_000,
		logs: []evmTypes.Log{
			transferLog(9_000, "0x1111111111111111111111111111111111111111", "0x2222222222222222222222222222222222222222", 5, "0x01"),
			transferLog(9_500, "0x3333333333333333333333333333333333333333", "0x4444444444444444444444444444444444444444", 7, "0x02"),
			transferLog(9_500, "0x5555555555555555555555555555555555555555", "0x6666666666666666666666666666666666666666", 9, "0x03"),
		},
	}
	client := newRPCClient(chain, 5_000, 0)

	records, err := client.FetchTransfers(context.Background(), usdtAddress, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Value != "9" || records[1].Value != "7" {
		t.Errorf("expected newest first, got %+v", records)
	}
	if records[0].From != common.HexToAddress("0x5555555555555555555555555555555555555555").Hex() {
		t.Errorf("unexpected sender %s", records[0].From)
	}
	if records[0].Timestamp != "1700009500" {
		t.Errorf("expected block timestamp 1700009500, got %s", records[0].Timestamp)
	}
	if chain.headerHits != 1 {
		t.Errorf("expected one header lookup for a shared block, got %d", chain.headerHits)
	}
	if chain.query.FromBlock.Uint64() != 5_000 || chain.query.ToBlock.Uint64() != 10_000 {
		t.Errorf("unexpected block range %s-%s", chain.query.FromBlock, chain.query.ToBlock)
	}
}

func TestRPCFetchTransfersSkipsNonERC20Logs(t *testing.T) {
	nft := transferLog(100, "0x1111111111111111111111111111111111111111", "0x2222222222222222222222222222222222222222", 1, "0x01")
	nft.Topics = append(nft.Topics, common.BigToHash(big.NewInt(42)))
	nft.Data = nil

	removed := transferLog(101, "0x1111111111111111111111111111111111111111", "0x2222222222222222222222222222222222222222", 1, "0x02")
	removed.Removed = true

	chain := &fakeChain{head: 200, logs: []evmTypes.Log{nft, removed}}
	client := newRPCClient(chain, 5_000, 0)

	_, err := client.FetchTransfers(context.Background(), usdtAddress, 10)
	if !errors.Is(err, ErrNoTransfers) {
		t.Fatalf("expected no transfers, got %v", err)
	}
	if chain.query.FromBlock.Uint64() != 0 {
		t.Errorf("expected lookback to stop at genesis, got %s", chain.query.FromBlock)
	}
}

func TestRPCFetchTransfersErrors(t *testing.T) {
	client := newRPCClient(&fakeChain{headErr: errors.New("connection refused")}, 10, 0)
	if _, err := client.FetchTransfers(context.Background(), usdtAddress, 10); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected provider unavailable, got %v", err)
	}

	client = newRPCClient(&fakeChain{head: 10, filterErr: errors.New("query returned more than 10000 results")}, 10, 0)
	if _, err := client.FetchTransfers(context.Background(), usdtAddress, 10); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected provider unavailable, got %v", err)
	}

	if _, err := client.FetchTransfers(context.Background(), "not-an-address", 10); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected provider unavailable for bad address, got %v", err)
	}
}

func TestRPCFetchRawTransfers(t *testing.T) {
	chain := &fakeChain{
		head: 10,
		logs: []evmTypes.Log{
			transferLog(5, "0x1111111111111111111111111111111111111111", "0x2222222222222222222222222222222222222222", 3, "0x01"),
		},
	}
	client := newRPCClient(chain, 100, 0)

	raw, err := client.FetchRawTransfers(context.Background(), usdtAddress, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raw))
	}
}
