// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli wires the Cobra command line for the Agoric developer MCP
// server. The default invocation serves MCP over stdio; subcommands cover
// local inspection tasks that do not need a client attached.
package cli
