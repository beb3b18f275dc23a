// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
	"github.com/Agoric/agoric-dev-mcp/src/mcp-server/templates"
)

// handleBuildTracePlan produces the ordered trace tool calls for a transfer.
// Pure; no provider is contacted.
func handleBuildTracePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	agoricAddress, err := request.RequireString("agoricAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("agoricAddress parameter required: %v", err)), nil
	}
	nobleAddress, err := request.RequireString("nobleAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("nobleAddress parameter required: %v", err)), nil
	}
	evmAddress, err := request.RequireString("evmAddress")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evmAddress parameter required: %v", err)), nil
	}
	destinationChain, err := request.RequireString("destinationChain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("destinationChain parameter required: %v", err)), nil
	}
	if _, ok := chains.Resolve(destinationChain); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported chain %q; use list_supported_chains", destinationChain)), nil
	}

	plan := trace.BuildPlan(trace.PlanParams{
		AgoricAddress:    agoricAddress,
		NobleAddress:     nobleAddress,
		EVMAddress:       evmAddress,
		DestinationChain: destinationChain,
		PositionName:     request.GetString("positionName", ""),
	})
	return mcp.NewToolResultStructured(plan, renderPlan(plan)), nil
}

// handleListSupportedChains lists the registered CCTP destination chains.
func handleListSupportedChains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profiles := chains.Supported()

	if request.GetString("format", "markdown") == "json" {
		data, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode chains: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.DisplayName(),
			strconv.FormatInt(p.ChainID, 10),
			p.DomainString(),
			strconv.Itoa(len(p.Factories)),
		})
	}
	text := "## Supported destination chains\n\n" +
		markdownTable([]string{"Chain", "Chain ID", "CCTP Domain", "Factories"}, rows)
	return mcp.NewToolResultText(text), nil
}

// guideFromTemplate serves an embedded guide document, optionally narrowed
// to the sections whose heading matches topic. An empty topic serves the
// whole document.
func guideFromTemplate(name, topic string) (*mcp.CallToolResult, error) {
	content, err := templates.MagicEmbed.ReadFile(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load guide: %v", err)), nil
	}
	doc := string(content)
	if topic == "" {
		return mcp.NewToolResultText(doc), nil
	}

	filtered, headings := filterGuideSections(doc, topic)
	if filtered == "" {
		return mcp.NewToolResultError(fmt.Sprintf(
			"no guide section matches topic %q; available sections: %s",
			topic, strings.Join(headings, ", "))), nil
	}
	return mcp.NewToolResultText(filtered), nil
}

// filterGuideSections returns the sections of a markdown document whose
// "## " heading contains topic, case-insensitively, preceded by the document
// title so the excerpt stays self-describing. The second return value lists
// every section heading for use in no-match messages.
func filterGuideSections(doc, topic string) (string, []string) {
	sections := strings.Split(doc, "\n## ")
	want := strings.ToLower(strings.TrimSpace(topic))
	title, _, _ := strings.Cut(sections[0], "\n")

	var headings []string
	var out strings.Builder
	for _, section := range sections[1:] {
		heading, _, _ := strings.Cut(section, "\n")
		headings = append(headings, heading)
		if !strings.Contains(strings.ToLower(heading), want) {
			continue
		}
		if out.Len() == 0 {
			out.WriteString(title + "\n")
		}
		out.WriteString("\n## " + strings.TrimRight(section, "\n") + "\n")
	}
	if out.Len() == 0 {
		return "", headings
	}
	return out.String(), headings
}

// handleGetOrchestrationGuide serves the orchestration development guide,
// optionally filtered to the sections matching the topic parameter.
func handleGetOrchestrationGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return guideFromTemplate("orchestration-guide.md", request.GetString("topic", ""))
}

// handleGetContractUpgradeGuide serves the contract upgrade guide.
func handleGetContractUpgradeGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return guideFromTemplate("contract-upgrade-guide.md", "")
}
