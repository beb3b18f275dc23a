// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// traceToolError maps a trace service error to an MCP tool error result.
// Upstream status errors surface the provider's own message so the caller
// sees what the indexer actually said.
func traceToolError(step string, err error) *mcp.CallToolResult {
	var statusErr *httpclient.StatusError
	switch {
	case errors.Is(err, trace.ErrMissingCredential):
		return mcp.NewToolResultError(fmt.Sprintf("%s unavailable: %v", step, err))
	case errors.As(err, &statusErr):
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", step, statusErr))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", step, err))
	}
}

// traceToolResult wraps a trace result as a dual-shape tool result: the
// structured JSON document plus a rendered markdown fallback.
func traceToolResult(result *trace.TraceResult) *mcp.CallToolResult {
	return mcp.NewToolResultStructured(result, renderTraceResult(result))
}

// handleTraceGMPTransaction finds the GMP call that opened a position on the
// destination chain (trace step 1).
func handleTraceGMPTransaction(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	destinationChain, err := request.RequireString("destinationChain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("destinationChain parameter required: %v", err)), nil
	}
	sourceAddress, err := request.RequireString("sourceAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sourceAddress parameter required: %v", err)), nil
	}

	result, err := svc.OriginationLookup(ctx, trace.OriginationParams{
		DestinationChain: destinationChain,
		SourceAddress:    sourceAddress,
		Size:             request.GetInt("size", 1),
	})
	if err != nil {
		return traceToolError("GMP lookup", err), nil
	}
	return traceToolResult(result), nil
}

// handleTraceFundingTx finds the Agoric acknowledgment that delivered funds
// to the Noble forwarding address (trace step 2).
func handleTraceFundingTx(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	agoricAddress, err := request.RequireString("agoricAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("agoricAddress parameter required: %v", err)), nil
	}
	nobleAddress, err := request.RequireString("nobleAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("nobleAddress parameter required: %v", err)), nil
	}

	result, err := svc.FundingLookup(ctx, trace.FundingParams{
		AgoricAddress: agoricAddress,
		NobleAddress:  nobleAddress,
		PageSize:      request.GetInt("pageSize", svc.DefaultPageSize()),
	})
	if err != nil {
		return traceToolError("funding lookup", err), nil
	}
	return traceToolResult(result), nil
}

// handleTraceCCTPBurn finds the Noble CCTP burn for the destination address
// and chain (trace step 3).
func handleTraceCCTPBurn(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	nobleAddress, err := request.RequireString("nobleAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("nobleAddress parameter required: %v", err)), nil
	}
	destinationChain, err := request.RequireString("destinationChain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("destinationChain parameter required: %v", err)), nil
	}
	evmAddress, err := request.RequireString("evmAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evmAddress parameter required: %v", err)), nil
	}

	result, err := svc.BurnLookup(ctx, trace.BurnParams{
		NobleAddress:     nobleAddress,
		DestinationChain: destinationChain,
		EVMAddress:       evmAddress,
		PageSize:         request.GetInt("pageSize", svc.DefaultPageSize()),
	})
	if err != nil {
		return traceToolError("burn lookup", err), nil
	}
	return traceToolResult(result), nil
}

// handleTraceEVMSettlement finds the settlement mint on the destination chain
// (trace step 4).
func handleTraceEVMSettlement(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	destinationChain, err := request.RequireString("destinationChain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("destinationChain parameter required: %v", err)), nil
	}
	evmAddress, err := request.RequireString("evmAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evmAddress parameter required: %v", err)), nil
	}

	result, err := svc.SettlementLookup(ctx, trace.SettlementParams{
		DestinationChain: destinationChain,
		EVMAddress:       evmAddress,
		ExpectedAmount:   request.GetString("expectedAmount", ""),
	})
	if err != nil {
		return traceToolError("settlement lookup", err), nil
	}
	return traceToolResult(result), nil
}

// handleTraceNobleSwap finds the Noble swap settling a USDN position.
func handleTraceNobleSwap(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	nobleAddress, err := request.RequireString("nobleAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("nobleAddress parameter required: %v", err)), nil
	}

	result, err := svc.SwapLookup(ctx, trace.SwapParams{
		NobleAddress: nobleAddress,
		PageSize:     request.GetInt("pageSize", svc.DefaultPageSize()),
	})
	if err != nil {
		return traceToolError("swap lookup", err), nil
	}
	return traceToolResult(result), nil
}
