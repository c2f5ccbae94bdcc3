// Package prompts implements MCP prompt handlers.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// SmokeTestPrompt handles the smoke-test MCP prompt.
// It walks the client through exercising every tool once, which is the
// quickest way to validate a container's stdio plumbing end to end.
type SmokeTestPrompt struct{}

// NewSmokeTestPrompt creates a SmokeTestPrompt.
func NewSmokeTestPrompt() *SmokeTestPrompt {
	return &SmokeTestPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *SmokeTestPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("smoke-test",
		mcp.WithPromptDescription(
			"Run a full stdio smoke test: call every tool once and report "+
				"whether the round trips succeeded.",
		),
	)
}

// Handle processes the smoke-test prompt request.
func (p *SmokeTestPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Stdio smoke test",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please verify this MCP server's stdio transport:\n\n" +
						"1. Call `echo` with a short message and confirm the response " +
						"contains the message, a timestamp, and the correct length\n" +
						"2. Call `get-random-data` with count=3 and confirm you get " +
						"3 records of structured technical data\n" +
						"3. Call `server-status` and report the version and uptime\n\n" +
						"Then summarize which calls succeeded and flag anything malformed.",
				),
			},
		},
	}, nil
}
