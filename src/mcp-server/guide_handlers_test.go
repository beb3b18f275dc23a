// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultText returns the text content of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestOrchestrationGuideFullDocument(t *testing.T) {
	result, err := handleGetOrchestrationGuide(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "# Agoric Orchestration Guide")
	assert.Contains(t, text, "## Core concepts")
	assert.Contains(t, text, "## Transfer flow")
	assert.Contains(t, text, "## Common pitfalls")
}

func TestOrchestrationGuideTopicFilter(t *testing.T) {
	result, err := handleGetOrchestrationGuide(context.Background(), callRequest(map[string]any{
		"topic": "pitfalls",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "# Agoric Orchestration Guide")
	assert.Contains(t, text, "## Common pitfalls")
	assert.Contains(t, text, "Timeouts are acknowledgments")
	assert.NotContains(t, text, "## Transfer flow")
	assert.NotContains(t, text, "## Core concepts")
}

func TestOrchestrationGuideTopicCaseInsensitive(t *testing.T) {
	result, err := handleGetOrchestrationGuide(context.Background(), callRequest(map[string]any{
		"topic": "TRANSFER FLOW",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "## Transfer flow")
	assert.NotContains(t, text, "## Common pitfalls")
}

func TestOrchestrationGuideUnknownTopic(t *testing.T) {
	result, err := handleGetOrchestrationGuide(context.Background(), callRequest(map[string]any{
		"topic": "staking",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `"staking"`)
	assert.Contains(t, text, "Core concepts")
}

func TestFilterGuideSections(t *testing.T) {
	doc := "# Title\n\nIntro.\n\n## Alpha\n\nBody A.\n\n## Beta topics\n\nBody B.\n"

	filtered, headings := filterGuideSections(doc, "beta")
	assert.Equal(t, []string{"Alpha", "Beta topics"}, headings)
	assert.Contains(t, filtered, "# Title")
	assert.Contains(t, filtered, "## Beta topics")
	assert.Contains(t, filtered, "Body B.")
	assert.NotContains(t, filtered, "Body A.")

	filtered, _ = filterGuideSections(doc, "missing")
	assert.Empty(t, filtered)
}
