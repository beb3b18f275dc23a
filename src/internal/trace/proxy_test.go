// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountBalances(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/noble/accounts/noble1abc/balances")
		json.NewEncoder(w).Encode(map[string]any{
			"balances": []map[string]any{
				{"denom": "uusdc", "amount": "1250000"},
				{"denom": "uusdn", "amount": "10"},
			},
		})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	balances, err := s.AccountBalances(context.Background(), "Noble", "noble1abc")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "uusdc", balances[0].Denom)
	assert.Equal(t, "1250000", balances[0].Amount)
}

func TestAccountTransactionsReshape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("take"))
		assert.Equal(t, "/cosmos.bank.v1beta1.MsgSend", r.URL.Query().Get("messageType"))
		json.NewEncoder(w).Encode(map[string]any{
			"transactions": []map[string]any{
				{
					"txhash": "OK", "height": "100", "code": 0,
					"tx": map[string]any{"body": map[string]any{
						"messages": []map[string]any{{"@type": "/cosmos.bank.v1beta1.MsgSend"}},
					}},
				},
				{"txhash": "FAILED", "height": "101", "code": 5},
			},
		})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	txs, err := s.AccountTransactions(context.Background(), "agoric", "agoric1abc", "/cosmos.bank.v1beta1.MsgSend", 5)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.True(t, txs[0].Success)
	assert.NotEmpty(t, txs[0].Messages)
	assert.False(t, txs[1].Success)
}

func TestEVMTransactionsSummarize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42161", r.URL.Query().Get("chainid"))
		json.NewEncoder(w).Encode(map[string]any{
			"status": "1", "message": "OK",
			"result": []map[string]any{
				{"hash": "0xaaa", "timeStamp": "1756000000", "functionName": "approve(address,uint256)"},
				{"hash": "0xbbb", "timeStamp": "1755000000"},
				{"hash": "0xccc", "timeStamp": "1754000000"},
			},
		})
	}))
	defer ts.Close()

	s := newTestService(ts.URL)
	txs, err := s.EVMTransactions(context.Background(), "arbitrum", "0xdeadbeef", 2)
	require.NoError(t, err)
	require.Len(t, txs, 2, "limit is applied after fetch")
	assert.Equal(t, "0xaaa", txs[0].Hash)
	assert.Equal(t, "https://arbiscan.io/tx/0xaaa", txs[0].ExplorerLink)
}

func TestEVMTransactionsUnsupportedChain(t *testing.T) {
	s := newTestService("http://unused")
	_, err := s.EVMTransactions(context.Background(), "solana", "0xdeadbeef", 5)
	assert.ErrorContains(t, err, "unsupported chain")
}
