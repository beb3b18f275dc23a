// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown documents the MCP server serves:
// the instructions template rendered during the MCP handshake and the
// developer guides exposed as tools and resources.
package templates
