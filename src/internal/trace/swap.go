// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"fmt"
)

// SwapParams are the inputs for the Noble swap lookup.
type SwapParams struct {
	NobleAddress string
	PageSize     int
}

// SwapLookup finds the most recent Noble swap executed by the address. USDN
// positions settle by swapping on Noble instead of burning through CCTP, so
// this replaces the burn and settlement steps for that path.
func (s *Service) SwapLookup(ctx context.Context, p SwapParams) (*TraceResult, error) {
	if p.NobleAddress == "" {
		return nil, fmt.Errorf("nobleAddress is required")
	}
	headers, err := s.mintscanHeaders()
	if err != nil {
		return nil, err
	}

	take := clampPageSize(p.PageSize)
	var resp accountTxsResponse
	reqURL := s.accountTxsURL("noble", p.NobleAddress, msgTypeSwap, take)
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("swap query failed: %w", err)
	}

	result := &TraceResult{Title: "Noble swap lookup"}

	for _, tx := range resp.Transactions {
		msg, ok := findMessage(txMessages(tx.Tx), msgTypeSwap)
		if !ok {
			continue
		}

		result.Found = true
		result.TxHash = tx.TxHash
		result.Items = append(result.Items,
			TraceItem{Label: "Noble transaction", Value: tx.TxHash, Link: nobleExplorerTx + tx.TxHash},
			TraceItem{Label: "Signer", Value: stringField(msg, "signer")},
		)
		if coin, ok := mapField(msg, "amount"); ok {
			amount := stringField(coin, "amount")
			result.BurnAmount = amount
			result.BurnDenom = stringField(coin, "denom")
			result.Items = append(result.Items, TraceItem{
				Label: "Swap amount",
				Value: humanAmount(amount) + " " + result.BurnDenom,
			})
		}
		if tx.Timestamp != "" {
			result.Items = append(result.Items, TraceItem{Label: "Timestamp", Value: tx.Timestamp})
		}
		return result, nil
	}

	result.Message = fmt.Sprintf(
		"No swap transaction by %s within the most recent %d transactions.",
		p.NobleAddress, take)
	return result, nil
}
