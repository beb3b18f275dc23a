// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
	"github.com/Agoric/agoric-dev-mcp/src/mcp-server/templates"
)

// ToolHandler is the signature for tool handlers that need no server-side
// dependencies beyond the request itself.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: The MCP tool call request containing arguments and metadata
//
// Returns:
//   - The tool execution result or an error if the tool failed
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithService is the signature for tool handlers that perform
// provider lookups through the shared trace service. The service carries the
// configured credentials and the retrying HTTP client.
type ToolHandlerWithService func(ctx context.Context, request mcp.CallToolRequest, svc *trace.Service) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool specification with its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Stable role identifier used by the instructions template to refer
//     to the tool regardless of its registered name
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithService pairs an MCP tool specification with a handler
// that receives the shared trace service. Used by every tool that calls an
// external indexer.
type ToolDefinitionWithService struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithService
	Role    string
}

// ServerDependencies holds everything needed to assemble the MCP server.
//
// Fields:
//   - Config: Server configuration with provider endpoints and credentials
//   - Embed: Embedded filesystem for guide documents and templates
//   - Version: Server version string for identification
//   - Service: Shared trace service used by provider-backed tools
//   - Tools: Tool definitions without service requirements
//   - ToolsWithService: Tool definitions that perform provider lookups
//   - Resources: Static and dynamic resources served to clients
//   - Prompts: Predefined prompts for guided workflows
//   - Instructions: Server instructions sent during the MCP handshake
type ServerDependencies struct {
	Config           *Config
	Embed            templates.EmbedFS
	Version          string
	Service          *trace.Service
	Tools            []ToolDefinition
	ToolsWithService []ToolDefinitionWithService
	Resources        []server.ServerResource
	Prompts          []server.ServerPrompt
	Instructions     string
}

// ServerBuilder constructs the MCP server with a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("0.3.1").
//	    WithService(svc).
//	    WithDefaultTools().
//	    Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for guides and templates.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithService sets the shared trace service that provider-backed tool
// handlers receive.
func (b *ServerBuilder) WithService(svc *trace.Service) *ServerBuilder {
	b.deps.Service = svc
	return b
}

// WithTools adds tool definitions that need no service access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithService adds tool definitions whose handlers receive the
// shared trace service.
func (b *ServerBuilder) WithToolsWithService(tools ...ToolDefinitionWithService) *ServerBuilder {
	b.deps.ToolsWithService = append(b.deps.ToolsWithService, tools...)
	return b
}

// WithResources adds static and dynamic resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts for guided workflows.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the server instructions sent to MCP clients during
// initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools adds the full Agoric developer tool set via createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithService := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithService = append(b.deps.ToolsWithService, toolsWithService...)
	return b
}

// Build creates the MCP server with all configured dependencies, registering
// every tool, resource, and prompt.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer("Agoric Developer Tools", b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	// Handlers that need the service get it bound at registration time.
	for _, tool := range b.deps.ToolsWithService {
		handler := tool.Handler
		s.AddTool(tool.Tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, request, b.deps.Service)
		})
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}
