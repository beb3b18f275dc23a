// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their
// handlers, split into tools that run locally and tools that query external
// providers through the trace service.
//
// Returns:
//   - A slice of ToolDefinition for local tools (planning, registry, guides)
//   - A slice of ToolDefinitionWithService for provider-backed tools
//
// The function defines the following tools:
//   - build_trace_plan: Produces the ordered trace steps for a transfer
//   - list_supported_chains: Lists registered CCTP destination chains
//   - get_orchestration_guide: Serves the Agoric orchestration guide
//   - get_contract_upgrade_guide: Serves the contract upgrade guide
//   - trace_gmp_transaction: Finds the GMP call that opened a position
//   - trace_funding_tx: Finds the IBC acknowledgment funding a Noble address
//   - trace_cctp_burn: Finds the Noble CCTP burn for a destination address
//   - trace_evm_settlement: Finds the settlement mint on the destination chain
//   - trace_noble_swap: Finds the Noble swap settling a USDN position
//   - get_account_balances: Reads a Cosmos account's balances
//   - get_account_transactions: Reads a Cosmos account's transaction history
//   - get_evm_transactions: Reads an EVM address's recent transactions
func createTools() ([]ToolDefinition, []ToolDefinitionWithService) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("build_trace_plan",
				mcp.WithDescription("Build the ordered sequence of trace tool calls for following a cross-chain transfer end to end"),
				mcp.WithString("agoricAddress",
					mcp.Required(),
					mcp.Description("Agoric address that initiated the transfer"),
				),
				mcp.WithString("nobleAddress",
					mcp.Required(),
					mcp.Description("Noble forwarding address for the transfer"),
				),
				mcp.WithString("evmAddress",
					mcp.Required(),
					mcp.Description("Destination EVM address"),
				),
				mcp.WithString("destinationChain",
					mcp.Required(),
					mcp.Description("Destination chain name (e.g. 'arbitrum', 'base')"),
				),
				mcp.WithString("positionName",
					mcp.Description("Position name; 'USDN' selects the Noble swap settlement path"),
				),
			),
			Handler: handleBuildTracePlan,
			Role:    "tracePlanner",
		},
		{
			Tool: mcp.NewTool("list_supported_chains",
				mcp.WithDescription("List the CCTP destination chains the trace tools support, with chain ids and CCTP domains"),
				mcp.WithString("format",
					mcp.Description("Output format: 'markdown' or 'json' (default: markdown)"),
					mcp.DefaultString("markdown"),
				),
			),
			Handler: handleListSupportedChains,
			Role:    "chainRegistry",
		},
		{
			Tool: mcp.NewTool("get_orchestration_guide",
				mcp.WithDescription("Get the Agoric orchestration development guide covering cross-chain flows and common pitfalls"),
				mcp.WithString("topic",
					mcp.Description("Optional section filter matched against section headings (e.g. 'pitfalls', 'transfer flow'); omit for the full guide"),
				),
			),
			Handler: handleGetOrchestrationGuide,
			Role:    "orchestrationGuide",
		},
		{
			Tool: mcp.NewTool("get_contract_upgrade_guide",
				mcp.WithDescription("Get the Agoric smart contract upgrade guide covering durable state and upgrade governance"),
			),
			Handler: handleGetContractUpgradeGuide,
			Role:    "upgradeGuide",
		},
	}

	toolsWithService := []ToolDefinitionWithService{
		{
			Tool: mcp.NewTool("trace_gmp_transaction",
				mcp.WithDescription("Find the Axelar GMP call that opened a position on the destination chain (trace step 1)"),
				mcp.WithString("destinationChain",
					mcp.Required(),
					mcp.Description("Destination chain name (e.g. 'arbitrum', 'base')"),
				),
				mcp.WithString("sourceAddress",
					mcp.Required(),
					mcp.Description("Agoric address that initiated the transfer"),
				),
				mcp.WithNumber("size",
					mcp.Description("Number of GMP records to request (default: 1)"),
					mcp.DefaultNumber(1),
				),
			),
			Handler: handleTraceGMPTransaction,
			Role:    "gmpTracer",
		},
		{
			Tool: mcp.NewTool("trace_funding_tx",
				mcp.WithDescription("Find the Agoric IBC acknowledgment that delivered funds to a Noble forwarding address (trace step 2)"),
				mcp.WithString("agoricAddress",
					mcp.Required(),
					mcp.Description("Agoric address whose acknowledgments are scanned"),
				),
				mcp.WithString("nobleAddress",
					mcp.Required(),
					mcp.Description("Noble forwarding address expected as the packet receiver"),
				),
				mcp.WithNumber("pageSize",
					mcp.Description("Transactions to scan, most recent first (max 20)"),
					mcp.DefaultNumber(20),
				),
			),
			Handler: handleTraceFundingTx,
			Role:    "fundingTracer",
		},
		{
			Tool: mcp.NewTool("trace_cctp_burn",
				mcp.WithDescription("Find the Noble CCTP burn targeting a destination address and chain, with the burned amount (trace step 3)"),
				mcp.WithString("nobleAddress",
					mcp.Required(),
					mcp.Description("Noble address whose burn transactions are scanned"),
				),
				mcp.WithString("destinationChain",
					mcp.Required(),
					mcp.Description("Destination chain name, matched against the burn's CCTP domain"),
				),
				mcp.WithString("evmAddress",
					mcp.Required(),
					mcp.Description("Expected mint recipient on the destination chain"),
				),
				mcp.WithNumber("pageSize",
					mcp.Description("Transactions to scan, most recent first (max 20)"),
					mcp.DefaultNumber(20),
				),
			),
			Handler: handleTraceCCTPBurn,
			Role:    "burnTracer",
		},
		{
			Tool: mcp.NewTool("trace_evm_settlement",
				mcp.WithDescription("Find the settlement transaction that minted funds to an address on the destination chain (trace step 4)"),
				mcp.WithString("destinationChain",
					mcp.Required(),
					mcp.Description("Destination chain name (e.g. 'arbitrum', 'base')"),
				),
				mcp.WithString("evmAddress",
					mcp.Required(),
					mcp.Description("Recipient address whose settlement is sought"),
				),
				mcp.WithString("expectedAmount",
					mcp.Description("Burn amount in base units from trace_cctp_burn; when set, the transferred amount is checked for exact equality"),
				),
			),
			Handler: handleTraceEVMSettlement,
			Role:    "settlementTracer",
		},
		{
			Tool: mcp.NewTool("trace_noble_swap",
				mcp.WithDescription("Find the Noble swap that settled a USDN position (replaces the burn and settlement steps on the USDN path)"),
				mcp.WithString("nobleAddress",
					mcp.Required(),
					mcp.Description("Noble address whose swap transactions are scanned"),
				),
				mcp.WithNumber("pageSize",
					mcp.Description("Transactions to scan, most recent first (max 20)"),
					mcp.DefaultNumber(20),
				),
			),
			Handler: handleTraceNobleSwap,
			Role:    "swapTracer",
		},
		{
			Tool: mcp.NewTool("get_account_balances",
				mcp.WithDescription("Get the spendable balances of a Cosmos account on Agoric or Noble"),
				mcp.WithString("chain",
					mcp.Required(),
					mcp.Description("Chain name: 'agoric' or 'noble'"),
				),
				mcp.WithString("address",
					mcp.Required(),
					mcp.Description("Bech32 account address"),
				),
			),
			Handler: handleGetAccountBalances,
			Role:    "balanceReader",
		},
		{
			Tool: mcp.NewTool("get_account_transactions",
				mcp.WithDescription("Get the recent transactions of a Cosmos account, optionally filtered by message type"),
				mcp.WithString("chain",
					mcp.Required(),
					mcp.Description("Chain name: 'agoric' or 'noble'"),
				),
				mcp.WithString("address",
					mcp.Required(),
					mcp.Description("Bech32 account address"),
				),
				mcp.WithString("messageType",
					mcp.Description("Message type filter (e.g. '/ibc.core.channel.v1.MsgAcknowledgement')"),
				),
				mcp.WithNumber("pageSize",
					mcp.Description("Transactions to fetch, most recent first (max 20)"),
					mcp.DefaultNumber(20),
				),
			),
			Handler: handleGetAccountTransactions,
			Role:    "cosmosTxReader",
		},
		{
			Tool: mcp.NewTool("get_evm_transactions",
				mcp.WithDescription("Get the recent transactions of an EVM address on a supported destination chain"),
				mcp.WithString("chain",
					mcp.Required(),
					mcp.Description("Destination chain name (e.g. 'arbitrum', 'base')"),
				),
				mcp.WithString("address",
					mcp.Required(),
					mcp.Description("EVM address"),
				),
				mcp.WithNumber("limit",
					mcp.Description("Transactions to return, most recent first (max 20)"),
					mcp.DefaultNumber(10),
				),
			),
			Handler: handleGetEVMTransactions,
			Role:    "evmTxReader",
		},
	}

	return tools, toolsWithService
}
