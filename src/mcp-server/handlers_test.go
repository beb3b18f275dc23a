// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInstructions(t *testing.T) {
	tools, toolsWithService := createTools()

	instructions, err := loadInstructions(tools, toolsWithService)
	require.NoError(t, err)
	require.NotEmpty(t, instructions)

	// Every registered tool appears in the rendered instructions.
	for _, tool := range tools {
		assert.Contains(t, instructions, tool.Tool.Name)
	}
	for _, tool := range toolsWithService {
		assert.Contains(t, instructions, tool.Tool.Name)
	}

	// Role placeholders were substituted, not leaked.
	assert.NotContains(t, instructions, "{{")
	assert.NotContains(t, instructions, "}}")
	assert.NotContains(t, instructions, "<no value>")
}

func TestLoadInstructionsMentionsCredentials(t *testing.T) {
	tools, toolsWithService := createTools()

	instructions, err := loadInstructions(tools, toolsWithService)
	require.NoError(t, err)

	assert.Contains(t, instructions, "MINTSCAN_API_TOKEN")
	assert.Contains(t, instructions, "ETHERSCAN_API_KEY")
}
