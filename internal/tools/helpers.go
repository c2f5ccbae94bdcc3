// Package tools implements the MCP tool handlers.
//
// Each tool is a struct that receives its dependencies at construction
// and exposes Definition() for registration plus Handle() compatible
// with mcp-go's CallToolRequest signature. One file per tool.
package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Count bounds for get-random-data. Out-of-range requests are clamped,
// never rejected — the harness should answer everything it can.
const (
	minCount = 1
	maxCount = 10
)

// clampCount forces a requested record count into [minCount, maxCount].
func clampCount(n int) int {
	if n < minCount {
		return minCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

// marshalResponse renders a tool response as indented JSON, matching
// the pretty-printed payloads clients expect from this harness.
func marshalResponse(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling response: %w", err)
	}
	return string(data), nil
}

// logStart records the inbound call with its raw arguments.
func logStart(logger *zap.Logger, tool string, req mcp.CallToolRequest) {
	logger.Info("tool call started",
		zap.String("tool", tool),
		zap.Any("arguments", req.GetArguments()),
	)
}

// logDone records a successful completion with timing and payload size.
func logDone(logger *zap.Logger, tool string, start time.Time, responseBytes int) {
	logger.Info("tool call completed",
		zap.String("tool", tool),
		zap.Float64("duration_ms", durationMS(start)),
		zap.Int("response_bytes", responseBytes),
	)
}

// logFail records a failed call. The full error stays in the log; the
// caller only ever sees a generic error result.
func logFail(logger *zap.Logger, tool string, start time.Time, err error) {
	logger.Error("tool call failed",
		zap.String("tool", tool),
		zap.Float64("duration_ms", durationMS(start)),
		zap.Error(err),
	)
}

// durationMS returns elapsed milliseconds since start, two decimals.
func durationMS(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Microseconds())/10) / 100
}
