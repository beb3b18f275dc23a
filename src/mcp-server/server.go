// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
	"github.com/Agoric/agoric-dev-mcp/src/mcp-server/templates"
	"github.com/Agoric/agoric-dev-mcp/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially the default from the version package and is
// overridden when Run is called with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server over stdio with the full Agoric developer tool
// set.
//
// Parameters:
//   - version: Version string to report for the server (e.g. "0.3.1")
//   - configFile: Path to a JSON or YAML configuration file; empty falls back
//     to the AGORIC_MCP_CONFIG_FILE environment variable, then defaults
//
// Server lifecycle:
//  1. Load configuration (defaults, file, environment)
//  2. Create the shared retrying HTTP client and trace service
//  3. Render server instructions from the registered tool set
//  4. Build the MCP server via ServerBuilder
//  5. Serve stdio until the client disconnects or SIGINT/SIGTERM arrives
//
// Graceful shutdown: SIGINT and SIGTERM cancel the serving context; the
// function then returns a wrapped context error.
func Run(version, configFile string) error {
	appVersion = version

	config, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := httpclient.New(config.httpConfig(version))
	svc := trace.NewService(client, config.traceConfig())

	// Created once and reused for both registration and instructions.
	tools, toolsWithService := createTools()

	instructions, err := loadInstructions(tools, toolsWithService)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	s, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithService(svc).
		WithTools(tools...).
		WithToolsWithService(toolsWithService...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
