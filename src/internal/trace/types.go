// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"encoding/json"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TraceItem is one display row of a trace step result: a label, a value, and
// an optional explorer link. Items carry no identity beyond their position.
type TraceItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

// TxSummary is the sanitized transaction shape returned by the settlement
// lookup. It deliberately exposes only these fields; the raw provider payload
// contains internal traces and input data that callers must not receive by
// default.
type TxSummary struct {
	Hash          string `json:"hash"`
	From          string `json:"from"`
	To            string `json:"to"`
	Value         string `json:"value"`
	BlockNumber   string `json:"blockNumber"`
	Timestamp     string `json:"timestamp"`
	GasUsed       string `json:"gasUsed"`
	GasPrice      string `json:"gasPrice"`
	Method        string `json:"method"`
	Confirmations string `json:"confirmations"`
	ExplorerLink  string `json:"explorerLink"`
}

// TraceResult is the outcome of a single trace step.
//
// Invariant: Found implies TxHash is populated. A step that cannot identify a
// transaction reports Found=false with an explanatory Message instead.
// Results are created fresh per invocation and never cached.
type TraceResult struct {
	Title               string          `json:"title"`
	Found               bool            `json:"found"`
	Items               []TraceItem     `json:"items"`
	Message             string          `json:"message,omitempty"`
	TxHash              string          `json:"txHash,omitempty"`
	BurnAmount          string          `json:"burnAmount,omitempty"`
	BurnDenom           string          `json:"burnDenom,omitempty"`
	TokenTransferAmount string          `json:"tokenTransferAmount,omitempty"`
	Transaction         *TxSummary      `json:"transaction,omitempty"`
	Raw                 json.RawMessage `json:"raw,omitempty"`
}

// NormalizeAddress lowercases an address-like string and strips any 0x
// prefix. It is idempotent; applying it twice yields the same result.
//
// Cross-chain correlation depends on this being applied consistently: Noble
// burn events carry decoded EVM addresses in mixed representations, and a
// missed normalization silently fails the match.
func NormalizeAddress(addr string) string {
	s := strings.ToLower(strings.TrimSpace(addr))
	return strings.TrimPrefix(s, "0x")
}

// AddressesEqual reports whether two address-like strings refer to the same
// address after normalization.
func AddressesEqual(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// amountPrinter renders grouped decimal amounts for display items
// (e.g. "1,250,000").
var amountPrinter = message.NewPrinter(language.English)

// humanAmount formats a decimal base-unit amount with digit grouping for
// display. Amounts that do not parse (or exceed int64) are returned verbatim;
// display formatting must never reject a value the provider accepted.
func humanAmount(amount string) string {
	n, ok := new(big.Int).SetString(amount, 10)
	if !ok || !n.IsInt64() {
		return amount
	}
	return amountPrinter.Sprintf("%d", n.Int64())
}
