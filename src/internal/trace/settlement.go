// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
)

// transferTopic is the keccak-256 signature hash of the ERC-20 Transfer
// event, matched against topic 0 of receipt logs.
var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")).Hex()

// executePrefix marks contract-execution calls in the decoded function name
// of an explorer transaction record.
const executePrefix = "execute"

// SettlementParams are the inputs for the settlement lookup.
//
// Fields:
//   - DestinationChain: Destination chain name, resolved to an EIP-155 chain id
//   - EVMAddress: Recipient address whose settlement is sought
//   - ExpectedAmount: Optional burn amount in base units for exact-match
//     annotation; empty disables the comparison
type SettlementParams struct {
	DestinationChain string
	EVMAddress       string
	ExpectedAmount   string
}

// explorerTx is one record from the explorer's account transaction list.
type explorerTx struct {
	Hash          string `json:"hash"`
	From          string `json:"from"`
	To            string `json:"to"`
	Value         string `json:"value"`
	BlockNumber   string `json:"blockNumber"`
	TimeStamp     string `json:"timeStamp"`
	GasUsed       string `json:"gasUsed"`
	GasPrice      string `json:"gasPrice"`
	FunctionName  string `json:"functionName"`
	Confirmations string `json:"confirmations"`
}

type explorerListResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Result  []explorerTx `json:"result"`
}

// receiptLog is one event log from an execution receipt.
type receiptLog struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

type receiptResponse struct {
	Result struct {
		Logs []receiptLog `json:"logs"`
	} `json:"result"`
}

// SettlementLookup finds the most recent contract-execution transaction that
// minted funds to the destination address (trace step 4). The receipt's logs
// are scanned for an ERC-20 Transfer whose recipient topic matches the
// address, and the transferred amount is decoded from the log data.
//
// The returned TxSummary is a deliberate reduction of the provider payload:
// raw records carry call traces and input data the caller must not receive.
func (s *Service) SettlementLookup(ctx context.Context, p SettlementParams) (*TraceResult, error) {
	profile, ok := chains.Resolve(p.DestinationChain)
	if !ok {
		return nil, fmt.Errorf("unsupported chain %q", p.DestinationChain)
	}
	if p.EVMAddress == "" {
		return nil, fmt.Errorf("evmAddress is required")
	}
	if s.cfg.EtherscanKey == "" {
		return nil, fmt.Errorf("%w: ETHERSCAN_API_KEY is not set", ErrMissingCredential)
	}

	txs, err := s.explorerTxList(ctx, profile, p.EVMAddress)
	if err != nil {
		return nil, fmt.Errorf("transaction list query failed: %w", err)
	}

	executions := make([]explorerTx, 0, len(txs))
	for _, tx := range txs {
		if strings.HasPrefix(tx.FunctionName, executePrefix) {
			executions = append(executions, tx)
		}
	}

	result := &TraceResult{Title: "Settlement lookup"}
	if len(executions) == 0 {
		result.Message = fmt.Sprintf(
			"No contract-execution transactions found for %s on %s.",
			p.EVMAddress, profile.DisplayName())
		return result, nil
	}

	// The explorer already returns newest-first, but the re-sort keeps the
	// selection independent of provider ordering. Timestamps are compared
	// numerically; lexicographic comparison breaks across digit widths.
	sort.SliceStable(executions, func(i, j int) bool {
		return unixSeconds(executions[i].TimeStamp) > unixSeconds(executions[j].TimeStamp)
	})
	latest := executions[0]

	result.Found = true
	result.TxHash = latest.Hash
	result.Transaction = summarize(latest, profile)
	result.Items = append(result.Items,
		TraceItem{Label: "Transaction", Value: latest.Hash, Link: profile.ExplorerTx + latest.Hash},
		TraceItem{Label: "Method", Value: latest.FunctionName},
		TraceItem{Label: "Block", Value: latest.BlockNumber},
	)
	if result.Transaction.Timestamp != "" {
		result.Items = append(result.Items, TraceItem{Label: "Timestamp", Value: result.Transaction.Timestamp})
	}

	amount, err := s.receiptTransferAmount(ctx, profile, latest.Hash, p.EVMAddress)
	if err != nil {
		result.Message = fmt.Sprintf("Transaction found but receipt lookup failed: %v", err)
		return result, nil
	}
	if amount == nil {
		result.Message = "Transaction found but no token transfer to the address appears in its receipt."
		return result, nil
	}

	result.TokenTransferAmount = amount.String()
	result.Items = append(result.Items, TraceItem{
		Label: "Token transfer",
		Value: humanAmount(amount.String()),
	})

	if p.ExpectedAmount != "" {
		expected, ok := new(big.Int).SetString(p.ExpectedAmount, 10)
		if ok && expected.Cmp(amount) == 0 {
			result.Items = append(result.Items, TraceItem{
				Label: "Amount match",
				Value: fmt.Sprintf("transferred amount equals expected burn amount (%s)", humanAmount(p.ExpectedAmount)),
			})
		} else {
			result.Message = fmt.Sprintf(
				"Transferred amount %s does not equal expected amount %s.",
				amount.String(), p.ExpectedAmount)
		}
	}
	return result, nil
}

// explorerTxList fetches the address's transaction list from the explorer
// proxy, most recent first.
func (s *Service) explorerTxList(ctx context.Context, profile chains.ChainProfile, address string) ([]explorerTx, error) {
	q := url.Values{}
	q.Set("chainid", strconv.FormatInt(profile.ChainID, 10))
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("sort", "desc")
	q.Set("apikey", s.cfg.EtherscanKey)

	var resp explorerListResponse
	if err := s.client.GetJSON(ctx, s.cfg.EtherscanBaseURL+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	// Status "0" with "No transactions found" is an empty list, not an error.
	if resp.Status != "1" && len(resp.Result) == 0 && !strings.Contains(resp.Message, "No transactions") {
		return nil, fmt.Errorf("explorer error: %s", resp.Message)
	}
	return resp.Result, nil
}

// receiptTransferAmount fetches the transaction receipt and returns the
// amount of the first Transfer log whose recipient topic matches the address,
// or nil when no such log exists.
func (s *Service) receiptTransferAmount(ctx context.Context, profile chains.ChainProfile, txHash, address string) (*big.Int, error) {
	q := url.Values{}
	q.Set("chainid", strconv.FormatInt(profile.ChainID, 10))
	q.Set("module", "proxy")
	q.Set("action", "eth_getTransactionReceipt")
	q.Set("txhash", txHash)
	q.Set("apikey", s.cfg.EtherscanKey)

	var resp receiptResponse
	if err := s.client.GetJSON(ctx, s.cfg.EtherscanBaseURL+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	target := NormalizeAddress(address)
	for _, lg := range resp.Result.Logs {
		if len(lg.Topics) < 3 {
			continue
		}
		if !strings.EqualFold(lg.Topics[0], transferTopic) {
			continue
		}
		// Topic 2 is the 32-byte left-padded recipient address.
		if !strings.HasSuffix(strings.ToLower(lg.Topics[2]), target) {
			continue
		}
		amount, ok := new(big.Int).SetString(strings.TrimPrefix(lg.Data, "0x"), 16)
		if !ok {
			continue
		}
		return amount, nil
	}
	return nil, nil
}

// unixSeconds parses an explorer unix-seconds timestamp for ordering.
// Unparsable values sort oldest.
func unixSeconds(ts string) int64 {
	n, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// summarize reduces an explorer record to the sanitized response shape.
func summarize(tx explorerTx, profile chains.ChainProfile) *TxSummary {
	ts := ""
	if unix, err := strconv.ParseInt(tx.TimeStamp, 10, 64); err == nil {
		ts = time.Unix(unix, 0).UTC().Format(time.RFC3339)
	}
	return &TxSummary{
		Hash:          tx.Hash,
		From:          tx.From,
		To:            tx.To,
		Value:         tx.Value,
		BlockNumber:   tx.BlockNumber,
		Timestamp:     ts,
		GasUsed:       tx.GasUsed,
		GasPrice:      tx.GasPrice,
		Method:        tx.FunctionName,
		Confirmations: tx.Confirmations,
		ExplorerLink:  profile.ExplorerTx + tx.Hash,
	}
}
