// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Agoric/agoric-dev-mcp/src/internal/chains"
	"github.com/Agoric/agoric-dev-mcp/src/internal/helper/posix"
	mcpserver "github.com/Agoric/agoric-dev-mcp/src/mcp-server"
)

// NewRootCommand builds the root command for the Agoric developer MCP
// server.
//
// Running the binary with no arguments starts the MCP server on stdio, the
// way MCP clients launch it. The --config flag points at a JSON or YAML
// configuration file; without it the server falls back to the
// AGORIC_MCP_CONFIG_FILE environment variable and then defaults.
func NewRootCommand(version string) *cobra.Command {
	var configFile string

	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "Agoric developer MCP server",
		Long: `Agoric developer MCP server exposing cross-chain transfer tracing,
account inspection, and orchestration guide tools to MCP clients over stdio.

Provider credentials come from the environment (MINTSCAN_API_TOKEN,
ETHERSCAN_API_KEY), a .env file, or the configuration file.`,
		Example: fmt.Sprintf(`  # Start the MCP server on stdio
  %[1]s

  # Start with an explicit configuration file
  %[1]s --config config.yaml

  # List the supported destination chains
  %[1]s chains`, exeName),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Run(version, configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to MCP server configuration file")
	rootCmd.AddCommand(newChainsCommand())

	return rootCmd
}

// newChainsCommand lists the supported destination chains without starting
// the server. Useful for checking registry contents from a shell.
func newChainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported CCTP destination chains",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range chains.Supported() {
				cmd.Printf("%-10s chain id %-8d CCTP domain %s\n",
					p.Name, p.ChainID, p.DomainString())
			}
		},
	}
}
