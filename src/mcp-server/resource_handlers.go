// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
	"github.com/Agoric/agoric-dev-mcp/src/mcp-server/templates"
)

// handleVersionResource serves the server version.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     GetVersion(),
		},
	}, nil
}

// handleChainsResource serves the chain registry as JSON.
func handleChainsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(chains.Supported(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode chain registry: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleGuideResource returns a handler serving the named embedded guide.
func handleGuideResource(name string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := templates.MagicEmbed.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read guide %s: %w", name, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}
