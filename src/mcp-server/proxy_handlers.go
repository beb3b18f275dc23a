// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// handleGetAccountBalances reads a Cosmos account's spendable balances.
func handleGetAccountBalances(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chain parameter required: %v", err)), nil
	}
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("address parameter required: %v", err)), nil
	}

	balances, err := svc.AccountBalances(ctx, chain, address)
	if err != nil {
		return traceToolError("balance lookup", err), nil
	}
	if len(balances) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No balances found for %s on %s.", address, chain)), nil
	}

	rows := make([][]string, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, []string{b.Denom, b.Amount})
	}
	text := fmt.Sprintf("## Balances for %s on %s\n\n%s",
		address, chain, markdownTable([]string{"Denom", "Amount"}, rows))
	return mcp.NewToolResultStructured(balances, text), nil
}

// handleGetAccountTransactions reads a Cosmos account's recent transactions.
func handleGetAccountTransactions(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chain parameter required: %v", err)), nil
	}
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("address parameter required: %v", err)), nil
	}

	txs, err := svc.AccountTransactions(ctx, chain, address,
		request.GetString("messageType", ""),
		request.GetInt("pageSize", svc.DefaultPageSize()))
	if err != nil {
		return traceToolError("transaction lookup", err), nil
	}
	if len(txs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No transactions found for %s on %s.", address, chain)), nil
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		status := "success"
		if !tx.Success {
			status = "failed"
		}
		rows = append(rows, []string{tx.TxHash, tx.Height, tx.Timestamp, status})
	}
	text := fmt.Sprintf("## Transactions for %s on %s\n\n%s",
		address, chain, markdownTable([]string{"Hash", "Height", "Timestamp", "Status"}, rows))
	return mcp.NewToolResultStructured(txs, text), nil
}

// handleGetEVMTransactions reads an EVM address's recent transactions on a
// supported destination chain.
func handleGetEVMTransactions(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chain parameter required: %v", err)), nil
	}
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("address parameter required: %v", err)), nil
	}

	txs, err := svc.EVMTransactions(ctx, chain, address, request.GetInt("limit", 10))
	if err != nil {
		return traceToolError("transaction lookup", err), nil
	}
	if len(txs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No transactions found for %s on %s.", address, chain)), nil
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", tx.Hash, tx.ExplorerLink),
			tx.BlockNumber, tx.Timestamp, tx.Method,
		})
	}
	text := fmt.Sprintf("## Transactions for %s on %s\n\n%s",
		address, chain, markdownTable([]string{"Hash", "Block", "Timestamp", "Method"}, rows))
	return mcp.NewToolResultStructured(txs, text), nil
}
