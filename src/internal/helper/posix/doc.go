// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides POSIX-compliant helpers for cross-platform
// compatibility, currently executable name extraction for CLI usage strings.
package posix
