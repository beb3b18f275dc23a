// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package trace follows a cross-chain USDC transfer from an Agoric account
// through its Noble forwarding address and CCTP burn to the minted funds on
// the destination EVM chain.
//
// Each step is an independent lookup against a public indexer (Axelarscan
// GMP, Mintscan, Etherscan) and returns a TraceResult. Steps share nothing
// but the retrying HTTP client; BuildPlan orders them for a given transfer
// without performing any I/O itself.
package trace
