package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mcplabs/mcp-stdio-test/internal/synth"
)

// Delay bounds applied when include_delay is set.
const (
	minDelay = 50 * time.Millisecond
	maxDelay = 500 * time.Millisecond
)

// RandomDataTool handles the get-random-data MCP tool. It returns
// synthetic technical telemetry so a client can verify that structured
// payloads survive the stdio round trip.
type RandomDataTool struct {
	gen    *synth.Generator
	logger *zap.Logger
}

// NewRandomDataTool creates a RandomDataTool with the given generator.
func NewRandomDataTool(gen *synth.Generator, logger *zap.Logger) *RandomDataTool {
	return &RandomDataTool{gen: gen, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *RandomDataTool) Definition() mcp.Tool {
	return mcp.NewTool("get-random-data",
		mcp.WithDescription(
			"Returns random structured technical data for testing stdio "+
				"communications. Generates ~10-15 fields of technical metrics.",
		),
		mcp.WithNumber("count",
			mcp.Description("Number of data records to generate (1-10, default: 1)"),
		),
		mcp.WithBoolean("include_delay",
			mcp.Description("Add a small random delay (50-500ms) to simulate real API latency"),
		),
	)
}

// recordBatch wraps multi-record responses. Single-record responses
// return the bare record for backward compatibility with clients that
// expect a flat object.
type recordBatch struct {
	Records []synth.Record `json:"records"`
	Count   int            `json:"count"`
}

// Handle processes the get-random-data tool call.
func (t *RandomDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	logStart(t.logger, "get-random-data", req)

	count := clampCount(req.GetInt("count", 1))

	if req.GetBool("include_delay", false) {
		if err := t.sleep(ctx); err != nil {
			logFail(t.logger, "get-random-data", start, err)
			return mcp.NewToolResultError("request canceled"), nil
		}
	}

	var payload any
	if count == 1 {
		payload = t.gen.Record()
	} else {
		payload = recordBatch{Records: t.gen.Records(count), Count: count}
	}

	text, err := marshalResponse(payload)
	if err != nil {
		logFail(t.logger, "get-random-data", start, err)
		return mcp.NewToolResultError("internal error building response"), nil
	}

	logDone(t.logger, "get-random-data", start, len(text))
	return mcp.NewToolResultText(text), nil
}

// sleep waits a random duration in [minDelay, maxDelay], aborting
// early if the request context is canceled.
func (t *RandomDataTool) sleep(ctx context.Context) error {
	timer := time.NewTimer(t.gen.Delay(minDelay, maxDelay))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
