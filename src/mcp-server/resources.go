// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources creates the static and dynamic resources served to MCP
// clients.
//
// Resources:
//   - info://version: Server version string
//   - chains://supported: Supported destination chains as JSON
//   - guide://orchestration: Agoric orchestration development guide
//   - guide://contract-upgrade: Contract upgrade guide
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource("info://version", "Server version",
				mcp.WithResourceDescription("Version of the Agoric developer MCP server"),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource("chains://supported", "Supported chains",
				mcp.WithResourceDescription("CCTP destination chains the trace tools support, with chain ids, CCTP domains, and explorer URLs"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleChainsResource,
		},
		{
			Resource: mcp.NewResource("guide://orchestration", "Orchestration guide",
				mcp.WithResourceDescription("Agoric orchestration development guide"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleGuideResource("orchestration-guide.md"),
		},
		{
			Resource: mcp.NewResource("guide://contract-upgrade", "Contract upgrade guide",
				mcp.WithResourceDescription("Agoric smart contract upgrade guide"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleGuideResource("contract-upgrade-guide.md"),
		},
	}
}
