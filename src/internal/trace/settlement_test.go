// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settlementTarget = "0x1234567890abcdef1234567890abcdef1234abcd"

// settlementServer serves a txlist with one execution call and a receipt
// whose Transfer log mints transferAmount to settlementTarget.
func settlementServer(t *testing.T, transferAmount *big.Int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "txlist":
			assert.Equal(t, "8453", r.URL.Query().Get("chainid"))
			json.NewEncoder(w).Encode(map[string]any{
				"status": "1", "message": "OK",
				"result": []map[string]any{
					{
						"hash": "0xolder", "timeStamp": "1755000000",
						"functionName": "executeFastTransfer(bytes32 orderId)",
					},
					{
						"hash": "0xsettle", "from": "0xrelayer", "to": "0xfactory",
						"value": "0", "blockNumber": "33001122", "timeStamp": "1756000000",
						"gasUsed": "210000", "gasPrice": "12000000",
						"functionName":  "executeFastTransfer(bytes32 orderId)",
						"confirmations": "120",
					},
					{
						"hash": "0xunrelated", "timeStamp": "1756900000",
						"functionName": "approve(address spender,uint256 value)",
					},
				},
			})
		case "eth_getTransactionReceipt":
			assert.Equal(t, "0xsettle", r.URL.Query().Get("txhash"))
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"logs": []map[string]any{
						{
							// Unrelated event, skipped.
							"topics": []string{"0x0000000000000000000000000000000000000000000000000000000000000000"},
							"data":   "0x01",
						},
						{
							"topics": []string{
								transferTopic,
								"0x000000000000000000000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
								"0x000000000000000000000000" + strings.TrimPrefix(settlementTarget, "0x"),
							},
							"data": fmt.Sprintf("0x%064x", transferAmount),
						},
					},
				},
			})
		default:
			t.Errorf("unexpected action %q", r.URL.Query().Get("action"))
		}
	}))
}

func TestSettlementLookupMatch(t *testing.T) {
	ts := settlementServer(t, big.NewInt(1250000))
	defer ts.Close()

	s := newTestService(ts.URL)
	result, err := s.SettlementLookup(context.Background(), SettlementParams{
		DestinationChain: "base",
		EVMAddress:       settlementTarget,
	})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, "0xsettle", result.TxHash)
	assert.Equal(t, "1250000", result.TokenTransferAmount)

	require.NotNil(t, result.Transaction)
	assert.Equal(t, "0xsettle", result.Transaction.Hash)
	assert.Equal(t, time.Unix(1756000000, 0).UTC().Format(time.RFC3339), result.Transaction.Timestamp)
	assert.Equal(t, "https://basescan.org/tx/0xsettle", result.Transaction.ExplorerLink)
	assert.Equal(t, "executeFastTransfer(bytes32 orderId)", result.Transaction.Method)
}

func TestSettlementLookupAmountMatchAnnotation(t *testing.T) {
	hasAmountMatch := func(result *TraceResult) bool {
		for _, item := range result.Items {
			if item.Label == "Amount match" {
				return true
			}
		}
		return false
	}

	run := func(t *testing.T, expected string) *TraceResult {
		ts := settlementServer(t, big.NewInt(1250000))
		defer ts.Close()
		s := newTestService(ts.URL)
		result, err := s.SettlementLookup(context.Background(), SettlementParams{
			DestinationChain: "base",
			EVMAddress:       settlementTarget,
			ExpectedAmount:   expected,
		})
		require.NoError(t, err)
		return result
	}

	t.Run("exact equality annotates", func(t *testing.T) {
		result := run(t, "1250000")
		assert.True(t, hasAmountMatch(result))
		assert.Empty(t, result.Message)
	})

	t.Run("mismatch reports instead", func(t *testing.T) {
		result := run(t, "1250001")
		assert.False(t, hasAmountMatch(result))
		assert.Contains(t, result.Message, "does not equal")
	})

	t.Run("absent expected amount means no annotation", func(t *testing.T) {
		result := run(t, "")
		assert.False(t, hasAmountMatch(result))
	})
}

func TestSettlementLookupOrdersTimestampsNumerically(t *testing.T) {
	// "999999999" sorts after "1756000000" lexicographically but is almost
	// twenty years older; the newer execution must win.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") == "txlist" {
			json.NewEncoder(w).Encode(map[string]any{
				"status": "1", "message": "OK",
				"result": []map[string]any{
					{"hash": "0xold", "timeStamp": "999999999", "functionName": "executeFastTransfer(bytes32)"},
					{"hash": "0xnew", "timeStamp": "1756000000", "functionName": "executeFastTransfer(bytes32)"},
				},
			})
			return
		}
		assert.Equal(t, "0xnew", r.URL.Query().Get("txhash"))
		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"logs": []map[string]any{}}})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	result, err := s.SettlementLookup(context.Background(), SettlementParams{
		DestinationChain: "base",
		EVMAddress:       settlementTarget,
	})
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "0xnew", result.TxHash)
}

func TestSettlementLookupNoExecutions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "1", "message": "OK",
			"result": []map[string]any{
				{"hash": "0xother", "functionName": "transfer(address to,uint256 value)"},
			},
		})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	result, err := s.SettlementLookup(context.Background(), SettlementParams{
		DestinationChain: "polygon",
		EVMAddress:       settlementTarget,
	})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Contains(t, result.Message, "No contract-execution transactions")
}

func TestSettlementLookupNoTransferLog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") == "txlist" {
			json.NewEncoder(w).Encode(map[string]any{
				"status": "1", "message": "OK",
				"result": []map[string]any{
					{"hash": "0xsettle", "timeStamp": "1756000000", "functionName": "executeFastTransfer(bytes32)"},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"logs": []map[string]any{}}})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	result, err := s.SettlementLookup(context.Background(), SettlementParams{
		DestinationChain: "base",
		EVMAddress:       settlementTarget,
	})
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Empty(t, result.TokenTransferAmount)
	assert.Contains(t, result.Message, "no token transfer")
}

func TestSettlementLookupMissingKey(t *testing.T) {
	s := newTestService("http://unused")
	s.cfg.EtherscanKey = ""
	_, err := s.SettlementLookup(context.Background(), SettlementParams{
		DestinationChain: "base",
		EVMAddress:       settlementTarget,
	})
	assert.ErrorIs(t, err, ErrMissingCredential)
}
