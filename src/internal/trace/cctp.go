// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
)

// cctpBurnEvent is the typed event emitted by the Noble CCTP module on a
// successful burn.
const cctpBurnEvent = "circle.cctp.v1.DepositForBurn"

// BurnParams are the inputs for the CCTP burn lookup.
//
// Fields:
//   - NobleAddress: Intermediate-chain address whose burns are scanned
//   - DestinationChain: Destination chain name, resolved to a CCTP domain
//   - EVMAddress: Expected mint recipient on the destination chain
//   - PageSize: Transactions to fetch, clamped to MaxPageSize
type BurnParams struct {
	NobleAddress     string
	DestinationChain string
	EVMAddress       string
	PageSize         int
}

// cctpBurn is the recipient/domain pair extracted from one burn event.
type cctpBurn struct {
	MintRecipient     string
	DestinationDomain string
}

// DecodeMintRecipient decodes a base64 mint-recipient blob into a lowercase
// 0x-prefixed EVM address. The blob is a 32-byte left-padded value; the last
// 20 bytes are the address.
//
// Invalid base64 or blobs shorter than 20 bytes return "". Decoding is pure;
// a fixed blob always yields the same address.
func DecodeMintRecipient(blob string) string {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || len(raw) < common.AddressLength {
		return ""
	}
	addr := common.BytesToAddress(raw[len(raw)-common.AddressLength:])
	return strings.ToLower(addr.Hex())
}

// BurnLookup finds the Noble CCTP burn that targets the destination address
// and domain (trace step 3), extracting the burned amount and denomination
// from the matching transaction's message body.
func (s *Service) BurnLookup(ctx context.Context, p BurnParams) (*TraceResult, error) {
	profile, ok := chains.Resolve(p.DestinationChain)
	if !ok {
		return nil, fmt.Errorf("unsupported chain %q", p.DestinationChain)
	}
	if p.NobleAddress == "" || p.EVMAddress == "" {
		return nil, fmt.Errorf("nobleAddress and evmAddress are required")
	}
	headers, err := s.mintscanHeaders()
	if err != nil {
		return nil, err
	}

	take := clampPageSize(p.PageSize)
	var resp accountTxsResponse
	reqURL := s.accountTxsURL("noble", p.NobleAddress, msgTypeDepositForBurn, take)
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("burn query failed: %w", err)
	}

	result := &TraceResult{Title: "CCTP burn lookup"}

	for _, tx := range resp.Transactions {
		burn, ok := extractCctpBurn(tx)
		if !ok {
			continue
		}
		recipient := DecodeMintRecipient(burn.MintRecipient)
		if recipient == "" {
			continue
		}
		if !AddressesEqual(recipient, p.EVMAddress) || burn.DestinationDomain != profile.DomainString() {
			continue
		}

		result.Found = true
		result.TxHash = tx.TxHash
		result.Items = append(result.Items,
			TraceItem{Label: "Noble transaction", Value: tx.TxHash, Link: nobleExplorerTx + tx.TxHash},
			TraceItem{Label: "Mint recipient", Value: recipient},
			TraceItem{Label: "Destination domain", Value: burn.DestinationDomain + " (" + profile.DisplayName() + ")"},
		)
		if tx.Timestamp != "" {
			result.Items = append(result.Items, TraceItem{Label: "Timestamp", Value: tx.Timestamp})
		}

		if amount, denom, ok := burnAmount(tx); ok {
			result.BurnAmount = amount
			result.BurnDenom = denom
			result.Items = append(result.Items, TraceItem{
				Label: "Burn amount",
				Value: humanAmount(amount) + " " + denom,
			})
		}
		return result, nil
	}

	result.Message = fmt.Sprintf(
		"No CCTP burn from %s to %s on %s within the most recent %d transactions.",
		p.NobleAddress, p.EVMAddress, profile.DisplayName(), take)
	return result, nil
}

// extractCctpBurn scans a transaction's logs for the CCTP burn event and
// returns its recipient/domain pair. Both attributes must be present; a
// partial event is treated as absent.
func extractCctpBurn(tx ProviderTx) (cctpBurn, bool) {
	for _, lg := range tx.Logs {
		for _, ev := range lg.Events {
			if ev.Type != cctpBurnEvent {
				continue
			}
			recipient, okR := eventAttr(ev, "mint_recipient")
			domain, okD := eventAttr(ev, "destination_domain")
			if okR && okD {
				return cctpBurn{MintRecipient: recipient, DestinationDomain: domain}, true
			}
		}
	}
	return cctpBurn{}, false
}

// burnAmount extracts the burned amount and denom from the transaction's
// MsgDepositForBurn body.
func burnAmount(tx ProviderTx) (amount, denom string, ok bool) {
	msg, found := findMessage(txMessages(tx.Tx), msgTypeDepositForBurn)
	if !found {
		return "", "", false
	}
	// amount may be a bare string or a coin object depending on the indexer.
	if a := stringField(msg, "amount"); a != "" {
		return a, stringField(msg, "burn_token"), true
	}
	coin, found := mapField(msg, "amount")
	if !found {
		return "", "", false
	}
	a := stringField(coin, "amount")
	if a == "" {
		return "", "", false
	}
	return a, stringField(coin, "denom"), true
}
