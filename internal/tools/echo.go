package tools

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// EchoTool handles the echo MCP tool — the smallest possible proof
// that a request made it through stdio and back.
type EchoTool struct {
	logger *zap.Logger
}

// NewEchoTool creates an EchoTool.
func NewEchoTool(logger *zap.Logger) *EchoTool {
	return &EchoTool{logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *EchoTool) Definition() mcp.Tool {
	return mcp.NewTool("echo",
		mcp.WithDescription(
			"Echoes back the provided message. Useful for testing basic stdio communication.",
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Message to echo back"),
		),
	)
}

// echoResponse mirrors the input message with receipt metadata. There
// is no length bound on message — the response reports the length so
// the client can verify large payloads itself. message_length counts
// characters, not bytes.
type echoResponse struct {
	EchoedMessage string `json:"echoed_message"`
	Timestamp     string `json:"timestamp"`
	MessageLength int    `json:"message_length"`
}

// Handle processes the echo tool call. A missing message is treated as
// the empty string rather than an error.
func (t *EchoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	logStart(t.logger, "echo", req)

	message := req.GetString("message", "")

	text, err := marshalResponse(echoResponse{
		EchoedMessage: message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		MessageLength: utf8.RuneCountInString(message),
	})
	if err != nil {
		logFail(t.logger, "echo", start, err)
		return mcp.NewToolResultError("internal error building response"), nil
	}

	logDone(t.logger, "echo", start, len(text))
	return mcp.NewToolResultText(text), nil
}
