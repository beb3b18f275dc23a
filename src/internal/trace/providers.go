// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"encoding/json"
	"strings"
)

// Provider payload shapes. These are loosely typed on purpose: the indexers
// evolve their schemas without notice, so every extraction helper below is a
// total function that returns an empty value on any structural surprise and
// lets the caller move on to the next candidate record.

// ProviderTx is one transaction record from the Mintscan account-transaction
// index. Logs hold the typed event stream; Tx holds the raw signed
// transaction body for message extraction.
type ProviderTx struct {
	TxHash    string          `json:"txhash"`
	Height    string          `json:"height"`
	Timestamp string          `json:"timestamp"`
	Code      int             `json:"code"`
	Logs      []TxLog         `json:"logs"`
	Tx        json.RawMessage `json:"tx"`
}

// TxLog is one per-message log entry.
type TxLog struct {
	MsgIndex int       `json:"msg_index"`
	Events   []TxEvent `json:"events"`
}

// TxEvent is one typed event with key/value attributes.
type TxEvent struct {
	Type       string        `json:"type"`
	Attributes []TxAttribute `json:"attributes"`
}

// TxAttribute is a single event attribute pair.
type TxAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// accountTxsResponse wraps the transaction list endpoints.
type accountTxsResponse struct {
	Transactions []ProviderTx `json:"transactions"`
}

// eventAttr returns the value of the named attribute.
//
// Protobuf-emitted event attributes arrive JSON-quoted ("\"4\"" rather than
// 4); surrounding quotes are stripped so callers compare plain values.
func eventAttr(ev TxEvent, key string) (string, bool) {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return unquote(attr.Value), true
		}
	}
	return "", false
}

// unquote strips one layer of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// txMessages extracts tx.body.messages as loose maps. Any parse failure
// yields nil; a malformed candidate must never abort a scan.
func txMessages(raw json.RawMessage) []map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var envelope struct {
		Body struct {
			Messages []map[string]any `json:"messages"`
		} `json:"body"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	return envelope.Body.Messages
}

// findMessage returns the first message whose @type matches msgType.
func findMessage(messages []map[string]any, msgType string) (map[string]any, bool) {
	for _, msg := range messages {
		if t, ok := msg["@type"].(string); ok && t == msgType {
			return msg, true
		}
	}
	return nil, false
}

// stringField reads a string-valued field from a loose map, tolerating
// JSON numbers (some indexers return packet sequences as numbers).
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		// Whole-number floats only; packet sequences and domains fit easily.
		return strings.TrimSuffix(strings.TrimSuffix(jsonNumber(v), ".0"), ".")
	default:
		return ""
	}
}

// jsonNumber renders a float64 the way encoding/json would.
func jsonNumber(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// mapField reads a nested object field from a loose map.
func mapField(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}
