// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import "fmt"

// USDNPosition is the position name that settles by Noble swap instead of a
// CCTP burn.
const USDNPosition = "USDN"

// PlanStep is one entry of a trace plan: which tool to call, with which
// parameters, and why.
type PlanStep struct {
	Step        int            `json:"step"`
	Tool        string         `json:"tool"`
	Parameters  map[string]any `json:"parameters"`
	Description string         `json:"description"`
}

// PlanParams identify the transfer to be traced.
type PlanParams struct {
	AgoricAddress    string
	NobleAddress     string
	EVMAddress       string
	DestinationChain string
	PositionName     string
}

// BuildPlan returns the ordered tool invocations that trace a transfer end
// to end. Pure; performs no I/O.
//
// USDN positions settle on Noble directly, so their plan is two steps and
// never touches CCTP or the destination chain. All other positions get the
// full four-step plan. The burn amount from the burn step is suggested as
// expectedAmount for the settlement step in the description only; the
// settlement tool works without it.
func BuildPlan(p PlanParams) []PlanStep {
	if p.PositionName == USDNPosition {
		return []PlanStep{
			{
				Step: 1,
				Tool: "trace_funding_tx",
				Parameters: map[string]any{
					"agoricAddress": p.AgoricAddress,
					"nobleAddress":  p.NobleAddress,
				},
				Description: "Find the Agoric acknowledgment that funded the Noble forwarding address.",
			},
			{
				Step: 2,
				Tool: "trace_noble_swap",
				Parameters: map[string]any{
					"nobleAddress": p.NobleAddress,
				},
				Description: "Find the Noble swap that settled the USDN position. No CCTP burn occurs on this path.",
			},
		}
	}

	return []PlanStep{
		{
			Step: 1,
			Tool: "trace_gmp_transaction",
			Parameters: map[string]any{
				"destinationChain": p.DestinationChain,
				"sourceAddress":    p.AgoricAddress,
			},
			Description: "Find the GMP call that opened the position on " + p.DestinationChain + ".",
		},
		{
			Step: 2,
			Tool: "trace_funding_tx",
			Parameters: map[string]any{
				"agoricAddress": p.AgoricAddress,
				"nobleAddress":  p.NobleAddress,
			},
			Description: "Find the Agoric acknowledgment that funded the Noble forwarding address.",
		},
		{
			Step: 3,
			Tool: "trace_cctp_burn",
			Parameters: map[string]any{
				"nobleAddress":     p.NobleAddress,
				"destinationChain": p.DestinationChain,
				"evmAddress":       p.EVMAddress,
			},
			Description: "Find the CCTP burn on Noble targeting " + p.EVMAddress + " and note its burnAmount.",
		},
		{
			Step: 4,
			Tool: "trace_evm_settlement",
			Parameters: map[string]any{
				"destinationChain": p.DestinationChain,
				"evmAddress":       p.EVMAddress,
			},
			Description: fmt.Sprintf(
				"Find the mint to %s on %s. Pass the burnAmount from step 3 as expectedAmount to verify the settled amount.",
				p.EVMAddress, p.DestinationChain),
		},
	}
}
