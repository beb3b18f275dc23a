// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")

	assert.NotEmpty(t, cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestChainsCommand(t *testing.T) {
	cmd := NewRootCommand("test")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"chains"})

	require.NoError(t, cmd.Execute())

	listing := out.String()
	for _, chain := range []string{"ethereum", "avalanche", "optimism", "arbitrum", "base", "polygon"} {
		assert.Contains(t, listing, chain)
	}
	assert.Contains(t, listing, "CCTP domain")
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand("9.9.9")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "9.9.9")
}
