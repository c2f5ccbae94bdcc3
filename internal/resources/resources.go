// Package resources implements MCP resource handlers.
//
// Resources provide read-only data the host can consume for context.
// They use URI-based addressing (test://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler serves the server's read-only resources.
type Handler struct {
	serverName string
	version    string
	startedAt  time.Time
}

// NewHandler creates a resource Handler reporting the given identity.
func NewHandler(serverName, version string, startedAt time.Time) *Handler {
	return &Handler{serverName: serverName, version: version, startedAt: startedAt}
}

// StatusResource returns the MCP resource definition for server status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"test://server/status",
		"Server Status",
		mcp.WithResourceDescription("Current server status, version, and uptime"),
		mcp.WithMIMEType("application/json"),
	)
}

// status mirrors the server-status tool payload so resource-oriented
// clients see the same data as tool-oriented ones.
type status struct {
	ServerName    string `json:"server_name"`
	Version       string `json:"version"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	UptimeInfo    string `json:"uptime_info"`
}

// HandleStatus returns the current server status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(status{
		ServerName:    h.serverName,
		Version:       h.version,
		Status:        "running",
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		UptimeInfo:    "Server is operational",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
