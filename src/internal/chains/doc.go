// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package chains holds the static registry of CCTP destination chains:
// chain ids, explorer URLs, factory contracts, and CCTP domain ids.
package chains
