// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts, and resources that depend on
// them. No business logic lives here — only wiring.
package server

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mcplabs/mcp-stdio-test/internal/prompts"
	"github.com/mcplabs/mcp-stdio-test/internal/resources"
	"github.com/mcplabs/mcp-stdio-test/internal/synth"
	"github.com/mcplabs/mcp-stdio-test/internal/tools"
)

// Name is the server identity announced during MCP initialization.
const Name = "mcp-stdio-test"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, the status
// resource, and the smoke-test prompt registered.
func New(logger *zap.Logger) *server.MCPServer {
	startedAt := time.Now()

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	gen := synth.New()

	randomDataTool := tools.NewRandomDataTool(gen, logger)
	s.AddTool(randomDataTool.Definition(), randomDataTool.Handle)

	echoTool := tools.NewEchoTool(logger)
	s.AddTool(echoTool.Definition(), echoTool.Handle)

	statusTool := tools.NewStatusTool(Name, Version, startedAt, logger)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(Name, Version, startedAt)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	// --- Register prompts ---

	smokePrompt := prompts.NewSmokeTestPrompt()
	s.AddPrompt(smokePrompt.Definition(), smokePrompt.Handle)

	return s
}

// serverInstructions tells the client what this server is for.
func serverInstructions() string {
	return `This is a minimal MCP test server for validating container stdio communications.

It holds no state and talks to no external services — every response is
generated in-process. Use it to verify that an MCP client and a container
can exchange messages over stdin/stdout.

Tools:
- echo: round-trips a message with a timestamp and length — the quickest
  connectivity check
- get-random-data: returns synthetic technical telemetry (1-10 records,
  optional simulated latency) for testing structured payload handling
- server-status: reports server name, version, and uptime

The "smoke-test" prompt walks through all three tools in one pass.`
}
