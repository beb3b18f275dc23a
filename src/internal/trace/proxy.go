// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
)

// Pass-through lookups. These return provider payloads with light reshaping
// so a client can inspect accounts without learning each indexer's API.

// Balance is one denominated balance of a Cosmos account.
type Balance struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type balancesResponse struct {
	Balances []Balance `json:"balances"`
}

// AccountBalances fetches the spendable balances of a Cosmos account on the
// given chain (Mintscan chain name, e.g. "agoric" or "noble").
func (s *Service) AccountBalances(ctx context.Context, chain, address string) ([]Balance, error) {
	if chain == "" || address == "" {
		return nil, fmt.Errorf("chain and address are required")
	}
	headers, err := s.mintscanHeaders()
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/%s/accounts/%s/balances",
		s.cfg.MintscanBaseURL, strings.ToLower(chain), url.PathEscape(address))
	var resp balancesResponse
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("balance query failed: %w", err)
	}
	return resp.Balances, nil
}

// AccountTx is one reshaped entry of a Cosmos account's transaction history.
type AccountTx struct {
	TxHash    string          `json:"txHash"`
	Height    string          `json:"height"`
	Timestamp string          `json:"timestamp"`
	Success   bool            `json:"success"`
	Messages  json.RawMessage `json:"messages,omitempty"`
}

// AccountTransactions fetches a Cosmos account's recent transactions,
// optionally filtered by message type.
func (s *Service) AccountTransactions(ctx context.Context, chain, address, messageType string, take int) ([]AccountTx, error) {
	if chain == "" || address == "" {
		return nil, fmt.Errorf("chain and address are required")
	}
	headers, err := s.mintscanHeaders()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("take", strconv.Itoa(clampPageSize(take)))
	if messageType != "" {
		q.Set("messageType", messageType)
	}
	reqURL := fmt.Sprintf("%s/%s/accounts/%s/transactions?%s",
		s.cfg.MintscanBaseURL, strings.ToLower(chain), url.PathEscape(address), q.Encode())

	var resp accountTxsResponse
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("transaction query failed: %w", err)
	}

	out := make([]AccountTx, 0, len(resp.Transactions))
	for _, tx := range resp.Transactions {
		entry := AccountTx{
			TxHash:    tx.TxHash,
			Height:    tx.Height,
			Timestamp: tx.Timestamp,
			Success:   tx.Code == 0,
		}
		var envelope struct {
			Body struct {
				Messages json.RawMessage `json:"messages"`
			} `json:"body"`
		}
		if err := json.Unmarshal(tx.Tx, &envelope); err == nil {
			entry.Messages = envelope.Body.Messages
		}
		out = append(out, entry)
	}
	return out, nil
}

// EVMTransactions fetches the recent transaction summaries of an EVM address
// on a supported destination chain.
func (s *Service) EVMTransactions(ctx context.Context, chainName, address string, limit int) ([]TxSummary, error) {
	profile, ok := chains.Resolve(chainName)
	if !ok {
		return nil, fmt.Errorf("unsupported chain %q", chainName)
	}
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if s.cfg.EtherscanKey == "" {
		return nil, fmt.Errorf("%w: ETHERSCAN_API_KEY is not set", ErrMissingCredential)
	}

	txs, err := s.explorerTxList(ctx, profile, address)
	if err != nil {
		return nil, fmt.Errorf("transaction list query failed: %w", err)
	}

	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if len(txs) > limit {
		txs = txs[:limit]
	}
	out := make([]TxSummary, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *summarize(tx, profile))
	}
	return out, nil
}
