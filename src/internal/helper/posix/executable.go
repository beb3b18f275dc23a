// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the executable name without extension, for use
// in CLI usage strings. It extracts the base name from os.Args[0], handles
// foreign path separators, and strips the .exe suffix on Windows.
//
// Falls back to "agoric-dev-mcp" when os.Args[0] is unavailable.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "agoric-dev-mcp"
	}

	name := filepath.Base(os.Args[0])

	// A Windows path on a Unix host (or vice versa) survives filepath.Base;
	// split on both separators and take the last component.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				name = parts[i]
				break
			}
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
