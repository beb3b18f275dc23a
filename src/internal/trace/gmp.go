// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"context"
	"fmt"
	"time"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
)

// OriginationParams are the inputs for the GMP origination lookup.
//
// Fields:
//   - DestinationChain: Destination chain name (case-insensitive, see chains registry)
//   - SourceAddress: Agoric address that initiated the transfer
//   - Size: Result-count hint passed to the GMP index (default 1)
type OriginationParams struct {
	DestinationChain string
	SourceAddress    string
	Size             int
}

// gmpSearchRequest is the Axelarscan GMP search body. Field names are the
// index's own; this is a fixed external protocol.
type gmpSearchRequest struct {
	Size             int    `json:"size"`
	SourceAddress    string `json:"sourceAddress"`
	Address          string `json:"address"`
	DestinationChain string `json:"destinationChain"`
}

// gmpRecord is one call/approval record from the GMP index. The index may
// bundle both halves of the relay in one record or return them separately,
// so the approved leg is optional even on a found record.
type gmpRecord struct {
	ID   string `json:"id"`
	Call struct {
		Event           string `json:"event"`
		TransactionHash string `json:"transactionHash"`
		BlockTimestamp  int64  `json:"block_timestamp"`
	} `json:"call"`
	Approved struct {
		TransactionHash string `json:"transactionHash"`
	} `json:"approved"`
}

type gmpSearchResponse struct {
	Data []gmpRecord `json:"data"`
}

// OriginationLookup finds the GMP call that originated a transfer toward the
// destination chain's factory contracts (trace step 1).
//
// The registered factory contracts are probed in configured order with one
// search each; the first contract returning a non-empty result wins and no
// further contracts are queried. This privileges the earliest-registered
// contract when an address has interacted with several factory generations.
//
// Returns a TraceResult with Found=false (not an error) when no factory
// contract yields a match.
func (s *Service) OriginationLookup(ctx context.Context, p OriginationParams) (*TraceResult, error) {
	profile, ok := chains.Resolve(p.DestinationChain)
	if !ok {
		return nil, fmt.Errorf("unsupported chain %q", p.DestinationChain)
	}
	if p.SourceAddress == "" {
		return nil, fmt.Errorf("sourceAddress is required")
	}

	size := p.Size
	if size <= 0 {
		size = 1
	}

	result := &TraceResult{Title: "GMP origination lookup"}

	for _, factory := range profile.Factories {
		req := gmpSearchRequest{
			Size:             size,
			SourceAddress:    p.SourceAddress,
			Address:          factory,
			DestinationChain: profile.Name,
		}

		var resp gmpSearchResponse
		if err := s.client.PostJSON(ctx, s.cfg.AxelarscanGMPURL+"/gmp/searchGMP", nil, req, &resp); err != nil {
			return nil, fmt.Errorf("GMP index query for contract %s failed: %w", factory, err)
		}
		if len(resp.Data) == 0 {
			continue
		}

		record := resp.Data[0]
		result.Found = true
		result.TxHash = record.Call.TransactionHash

		result.Items = append(result.Items,
			TraceItem{Label: "GMP ID", Value: record.ID, Link: "https://axelarscan.io/gmp/" + record.ID},
			TraceItem{Label: "Event", Value: record.Call.Event},
			TraceItem{Label: "Factory contract", Value: factory},
		)
		if record.Call.TransactionHash != "" {
			result.Items = append(result.Items, TraceItem{
				Label: "Source transaction",
				Value: record.Call.TransactionHash,
				Link:  agoricExplorerTx + record.Call.TransactionHash,
			})
		}
		if record.Approved.TransactionHash != "" {
			result.Items = append(result.Items, TraceItem{
				Label: "Destination transaction",
				Value: record.Approved.TransactionHash,
				Link:  profile.ExplorerTx + record.Approved.TransactionHash,
			})
		}
		if record.Call.BlockTimestamp > 0 {
			result.Items = append(result.Items, TraceItem{
				Label: "Timestamp",
				Value: time.Unix(record.Call.BlockTimestamp, 0).UTC().Format(time.RFC3339),
			})
		}
		return result, nil
	}

	result.Message = fmt.Sprintf(
		"No GMP call from %s to any of the %d registered %s factory contracts.",
		p.SourceAddress, len(profile.Factories), profile.DisplayName())
	return result, nil
}
