// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging for CLI and MCP server modes.
//
// The MCP variant defaults to silence because the MCP stdio transport owns
// stdout; structured JSON lines can be routed to stderr or a file instead.
package logger
