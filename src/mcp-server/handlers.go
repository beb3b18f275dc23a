// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Agoric/agoric-dev-mcp/src/mcp-server/templates"
)

// instructionData holds the data used to populate the server instructions
// template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents one tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the embedded instructions template with the
// registered tool set and returns the result for MCP client initialization.
//
// The template refers to tools by role ({{.ToolRoles.burnTracer}}) rather
// than by name, so renaming a tool only requires updating its definition.
func loadInstructions(tools []ToolDefinition, toolsWithService []ToolDefinitionWithService) (string, error) {
	templateBytes, err := templates.MagicEmbed.ReadFile("agoric_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load server instructions template: %w", err)
	}

	var toolInfos []toolInfo
	toolRoles := make(map[string]string)

	for _, tool := range tools {
		toolName := string(tool.Tool.Name)
		toolInfos = append(toolInfos, toolInfo{Name: toolName, Description: tool.Tool.Description})
		if tool.Role != "" {
			toolRoles[tool.Role] = toolName
		}
	}
	for _, tool := range toolsWithService {
		toolName := string(tool.Tool.Name)
		toolInfos = append(toolInfos, toolInfo{Name: toolName, Description: tool.Tool.Description})
		if tool.Role != "" {
			toolRoles[tool.Role] = toolName
		}
	}

	data := instructionData{
		Tools:     toolInfos,
		ToolRoles: toolRoles,
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}
