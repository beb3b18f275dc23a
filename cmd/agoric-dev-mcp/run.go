// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"

	"github.com/Agoric/agoric-dev-mcp/src/cli"
	"github.com/Agoric/agoric-dev-mcp/src/logger"
	"github.com/Agoric/agoric-dev-mcp/src/version"
)

func main() {
	log := logger.NewCLILogger()

	rootCmd := cli.NewRootCommand(version.Version)
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
