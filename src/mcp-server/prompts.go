// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("trace-transfer",
				mcp.WithPromptDescription("Trace a cross-chain USDC transfer from Agoric to its destination chain step by step"),
				mcp.WithArgument("agoric_address",
					mcp.ArgumentDescription("Agoric address that initiated the transfer"),
				),
				mcp.WithArgument("noble_address",
					mcp.ArgumentDescription("Noble forwarding address for the transfer"),
				),
				mcp.WithArgument("evm_address",
					mcp.ArgumentDescription("Destination EVM address"),
				),
				mcp.WithArgument("destination_chain",
					mcp.ArgumentDescription("Destination chain name (e.g. 'arbitrum', 'base')"),
				),
			),
			Handler: handleTraceTransferPrompt,
		},
		{
			Prompt: mcp.NewPrompt("diagnose-stuck-transfer",
				mcp.WithPromptDescription("Diagnose where a cross-chain transfer stalled"),
				mcp.WithArgument("noble_address",
					mcp.ArgumentDescription("Noble forwarding address for the transfer"),
				),
				mcp.WithArgument("destination_chain",
					mcp.ArgumentDescription("Destination chain name"),
				),
			),
			Handler: handleDiagnoseStuckTransferPrompt,
		},
	}
}

// handleTraceTransferPrompt handles the end-to-end transfer tracing workflow prompt
func handleTraceTransferPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	agoricAddress := request.Params.Arguments["agoric_address"]
	destinationChain := request.Params.Arguments["destination_chain"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll trace the transfer from %s toward %s through each hop.

Let's start by planning the trace:`, agoricAddress, destinationChain)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`1. Use the "build_trace_plan" tool with all four addresses to get the ordered steps for this transfer.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. Run each planned step in order: "trace_gmp_transaction", "trace_funding_tx", "trace_cctp_burn", then "trace_evm_settlement".`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`3. Pass the burnAmount from the burn step as expectedAmount to the settlement step so the settled amount is verified.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`4. Summarize the transfer with explorer links for every hop, and call out any step that reported found=false.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Cross-Chain Transfer Trace Workflow",
		messages,
	), nil
}

// handleDiagnoseStuckTransferPrompt handles the stalled transfer diagnosis prompt
func handleDiagnoseStuckTransferPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	nobleAddress := request.Params.Arguments["noble_address"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll find where the transfer through %s stalled by checking each hop in order.`, nobleAddress)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`1. Use "get_account_balances" on the Noble forwarding address. A non-zero USDC balance means funds arrived but the burn has not happened.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. Use "trace_cctp_burn" to check whether the burn was submitted. If found, note its burnAmount.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`3. Use "trace_evm_settlement" on the destination chain. A found burn with no settlement means the attestation or relay is pending.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`4. Report the last completed hop and what the next expected action is.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Stuck Transfer Diagnosis",
		messages,
	), nil
}
