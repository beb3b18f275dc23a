// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package chains

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ChainProfile describes one supported CCTP destination chain.
//
// Profiles are static: they are defined once at package init and never
// mutated. All lookups go through [Resolve].
//
// Fields:
//   - Name: Canonical lowercase chain name, the registry key
//   - ChainID: EVM numeric chain id (EIP-155)
//   - ExplorerTx: Block explorer transaction URL prefix; append a tx hash
//   - Factories: Ordered factory contract addresses probed by the GMP
//     origination lookup; earlier entries win
//   - CCTPDomain: Circle CCTP destination domain id (distinct from ChainID)
type ChainProfile struct {
	Name       string
	ChainID    int64
	ExplorerTx string
	Factories  []string
	CCTPDomain uint32
}

// DisplayName returns the human-facing chain name (e.g. "arbitrum" -> "Arbitrum").
func (p ChainProfile) DisplayName() string {
	return cases.Title(language.English).String(p.Name)
}

// DomainString returns the CCTP domain id as a decimal string, the form it
// takes in Noble burn event attributes.
func (p ChainProfile) DomainString() string {
	return strconv.FormatUint(uint64(p.CCTPDomain), 10)
}

// registry holds every supported destination chain, keyed by canonical
// lowercase name. CCTP domain ids follow Circle's published assignments;
// chain ids follow EIP-155.
var registry = map[string]ChainProfile{
	"ethereum": {
		Name:       "ethereum",
		ChainID:    1,
		ExplorerTx: "https://etherscan.io/tx/",
		Factories: []string{
			"0xad6d2b4d4b8a4f2e1c5c6f3b9a0d8e7f6a5b4c3d",
		},
		CCTPDomain: 0,
	},
	"avalanche": {
		Name:       "avalanche",
		ChainID:    43114,
		ExplorerTx: "https://snowtrace.io/tx/",
		Factories: []string{
			"0x9f1b8c2a3d4e5f60718293a4b5c6d7e8f9012345",
		},
		CCTPDomain: 1,
	},
	"optimism": {
		Name:       "optimism",
		ChainID:    10,
		ExplorerTx: "https://optimistic.etherscan.io/tx/",
		Factories: []string{
			"0x7c3e2f1a0b9d8c7e6f5a4b3c2d1e0f9a8b7c6d5e",
		},
		CCTPDomain: 2,
	},
	"arbitrum": {
		Name:       "arbitrum",
		ChainID:    42161,
		ExplorerTx: "https://arbiscan.io/tx/",
		Factories: []string{
			"0x1e0c5a9f8b7d6c5e4f3a2b1c0d9e8f7a6b5c4d3e",
		},
		CCTPDomain: 3,
	},
	"base": {
		Name:       "base",
		ChainID:    8453,
		ExplorerTx: "https://basescan.org/tx/",
		// Base has two factory generations deployed; the newer one is
		// probed first.
		Factories: []string{
			"0x5b4a3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6b",
			"0x2d1c0b9a8f7e6d5c4b3a2f1e0d9c8b7a6f5e4d3c",
		},
		CCTPDomain: 6,
	},
	"polygon": {
		Name:       "polygon",
		ChainID:    137,
		ExplorerTx: "https://polygonscan.com/tx/",
		Factories: []string{
			"0x8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f",
		},
		CCTPDomain: 7,
	},
}

// supportedOrder fixes the iteration order for [Supported]; map iteration is
// randomized and tool output must be stable.
var supportedOrder = []string{"ethereum", "avalanche", "optimism", "arbitrum", "base", "polygon"}

// Resolve returns the profile for the given chain name.
//
// The lookup is case-insensitive: names are lowercased before matching the
// registry's canonical lowercase keys. The second return value is false for
// unknown chains; callers must report an explicit "unsupported chain" error
// rather than proceeding with a zero profile.
func Resolve(chainName string) (ChainProfile, bool) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(chainName))]
	return p, ok
}

// Supported returns all registered profiles in stable display order.
func Supported() []ChainProfile {
	out := make([]ChainProfile, 0, len(supportedOrder))
	for _, name := range supportedOrder {
		out = append(out, registry[name])
	}
	return out
}
