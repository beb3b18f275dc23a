// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver implements the Agoric developer MCP server.
//
// The server exposes cross-chain transfer tracing, account inspection, and
// orchestration guide tools over the Model Context Protocol so AI assistants
// can diagnose Fast USDC transfers and query Agoric, Noble, and EVM chain
// state without learning each indexer's API.
package mcpserver
