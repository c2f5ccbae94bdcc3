package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// StatusTool handles the server-status MCP tool. The response schema
// is fixed regardless of input.
type StatusTool struct {
	serverName string
	version    string
	startedAt  time.Time
	logger     *zap.Logger
}

// NewStatusTool creates a StatusTool reporting the given identity.
func NewStatusTool(serverName, version string, startedAt time.Time, logger *zap.Logger) *StatusTool {
	return &StatusTool{
		serverName: serverName,
		version:    version,
		startedAt:  startedAt,
		logger:     logger,
	}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("server-status",
		mcp.WithDescription(
			"Returns the current server status and version information.",
		),
	)
}

// statusResponse is the fixed server-status schema.
type statusResponse struct {
	ServerName    string `json:"server_name"`
	Version       string `json:"version"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	UptimeInfo    string `json:"uptime_info"`
}

// Handle processes the server-status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	logStart(t.logger, "server-status", req)

	text, err := marshalResponse(statusResponse{
		ServerName:    t.serverName,
		Version:       t.version,
		Status:        "running",
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		UptimeSeconds: int64(time.Since(t.startedAt).Seconds()),
		UptimeInfo:    "Server is operational",
	})
	if err != nil {
		logFail(t.logger, "server-status", start, err)
		return mcp.NewToolResultError("internal error building response"), nil
	}

	logDone(t.logger, "server-status", start, len(text))
	return mcp.NewToolResultText(text), nil
}
