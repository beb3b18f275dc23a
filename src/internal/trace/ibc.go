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
)

// FundingParams are the inputs for the IBC funding/acknowledgment lookup.
//
// Fields:
//   - AgoricAddress: Origin-chain address whose acknowledgments are scanned
//   - NobleAddress: Intermediate-chain forwarding address to match as receiver
//   - PageSize: Transactions to fetch, clamped to MaxPageSize
type FundingParams struct {
	AgoricAddress string
	NobleAddress  string
	PageSize      int
}

// packetRef identifies one IBC packet extracted from an acknowledgment
// message.
type packetRef struct {
	Sequence   string
	DstChannel string
	DstPort    string
}

// FundingLookup finds the Agoric acknowledgment transaction that delivered
// funds to the Noble forwarding address (trace step 2), then best-effort
// resolves the corresponding inbound Noble transaction.
//
// The receiver comparison is exact string equality. Bech32 addresses are
// canonical on the wire, so no normalization is applied here.
func (s *Service) FundingLookup(ctx context.Context, p FundingParams) (*TraceResult, error) {
	if p.AgoricAddress == "" || p.NobleAddress == "" {
		return nil, fmt.Errorf("agoricAddress and nobleAddress are required")
	}
	headers, err := s.mintscanHeaders()
	if err != nil {
		return nil, err
	}

	take := clampPageSize(p.PageSize)
	var resp accountTxsResponse
	reqURL := s.accountTxsURL("agoric", p.AgoricAddress, msgTypeAcknowledgement, take)
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("acknowledgment query failed: %w", err)
	}

	result := &TraceResult{Title: "IBC funding lookup"}

	for _, tx := range resp.Transactions {
		if !txDeliversTo(tx, p.NobleAddress) {
			continue
		}

		result.Found = true
		result.TxHash = tx.TxHash
		result.Items = append(result.Items,
			TraceItem{Label: "Agoric transaction", Value: tx.TxHash, Link: agoricExplorerTx + tx.TxHash},
			TraceItem{Label: "Receiver", Value: p.NobleAddress},
		)
		if tx.Timestamp != "" {
			result.Items = append(result.Items, TraceItem{Label: "Timestamp", Value: tx.Timestamp})
		}

		if ref, ok := ackPacket(tx); ok {
			result.Items = append(result.Items,
				TraceItem{Label: "Packet sequence", Value: ref.Sequence},
				TraceItem{Label: "Destination channel", Value: ref.DstChannel},
				TraceItem{Label: "Destination port", Value: ref.DstPort},
			)
			// Best effort: a failed reverse lookup only omits the Noble link.
			if nobleHash, err := s.nobleInboundTx(ctx, headers, ref); err == nil && nobleHash != "" {
				result.Items = append(result.Items, TraceItem{
					Label: "Noble transaction",
					Value: nobleHash,
					Link:  nobleExplorerTx + nobleHash,
				})
			}
		}
		return result, nil
	}

	result.Message = fmt.Sprintf(
		"No acknowledgment transaction delivering to %s within the most recent %d transactions. "+
			"Older transfers fall outside this %d-transaction window.",
		p.NobleAddress, take, MaxPageSize)
	return result, nil
}

// txDeliversTo reports whether any event in the transaction's logs names
// receiver as the IBC packet recipient. Two shapes occur in the wild: a
// packet_data attribute whose value is JSON with a receiver field, and a
// fungible_token_packet event with a direct receiver attribute.
func txDeliversTo(tx ProviderTx, receiver string) bool {
	for _, lg := range tx.Logs {
		for _, ev := range lg.Events {
			switch ev.Type {
			case "write_acknowledgement", "recv_packet":
				if data, ok := eventAttr(ev, "packet_data"); ok {
					if packetDataReceiver(data) == receiver {
						return true
					}
				}
			case "fungible_token_packet":
				if r, ok := eventAttr(ev, "receiver"); ok && r == receiver {
					return true
				}
			}
		}
	}
	return false
}

// packetDataReceiver parses a packet_data attribute value as JSON and returns
// its receiver field, or "" when the value is not a receiver-bearing document.
func packetDataReceiver(data string) string {
	var payload struct {
		Receiver string `json:"receiver"`
	}
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return ""
	}
	return payload.Receiver
}

// ackPacket extracts the acknowledged packet's identifiers from the
// transaction's MsgAcknowledgement body.
func ackPacket(tx ProviderTx) (packetRef, bool) {
	msg, ok := findMessage(txMessages(tx.Tx), msgTypeAcknowledgement)
	if !ok {
		return packetRef{}, false
	}
	packet, ok := mapField(msg, "packet")
	if !ok {
		return packetRef{}, false
	}
	ref := packetRef{
		Sequence:   stringField(packet, "sequence"),
		DstChannel: stringField(packet, "destination_channel"),
		DstPort:    stringField(packet, "destination_port"),
	}
	if ref.Sequence == "" || ref.DstChannel == "" {
		return packetRef{}, false
	}
	return ref, true
}

// nobleInboundTx resolves the Noble transaction that received the packet, by
// reverse lookup on (destination channel, sequence).
func (s *Service) nobleInboundTx(ctx context.Context, headers map[string]string, ref packetRef) (string, error) {
	query := fmt.Sprintf("recv_packet.packet_dst_channel='%s' AND recv_packet.packet_sequence='%s'",
		ref.DstChannel, ref.Sequence)
	reqURL := fmt.Sprintf("%s/noble/transactions?query=%s&take=1",
		s.cfg.MintscanBaseURL, url.QueryEscape(query))

	var resp accountTxsResponse
	if err := s.client.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return "", err
	}
	if len(resp.Transactions) == 0 {
		return "", nil
	}
	return resp.Transactions[0].TxHash, nil
}
