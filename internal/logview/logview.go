// Package logview renders the server's JSON log stream as a compact,
// table-style view: one line per completed tool call instead of the
// three structured records the server emits.
//
// It is the consumer side of the logging contract in internal/tools —
// a "tool call started" line carries the tool name and arguments, the
// matching "tool call completed"/"tool call failed" line carries the
// timing. Orphan completions (e.g. when tailing starts mid-call) are
// dropped silently.
package logview

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// ANSI escape codes for the table output.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	gray   = "\033[90m"
)

// headerEvery repeats the column header after this many rows.
const headerEvery = 20

// entry is the subset of the zap JSON schema the viewer reads.
// Non-JSON lines and unknown messages are skipped, so the viewer can
// be pointed at a mixed stderr stream without choking.
type entry struct {
	Timestamp     string         `json:"timestamp"`
	Msg           string         `json:"msg"`
	Tool          string         `json:"tool"`
	Arguments     map[string]any `json:"arguments"`
	DurationMS    float64        `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	Error         string         `json:"error"`
	Version       string         `json:"version"`
}

// Options configures the rendered output.
type Options struct {
	// NoColor disables ANSI escapes, for piping into files.
	NoColor bool
}

// Run reads JSON log lines from r until EOF and writes the rendered
// table to w.
func Run(r io.Reader, w io.Writer, opts Options) error {
	tracker := newTracker(opts)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rows := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}

		var e entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}

		out, isRow := tracker.process(e)
		if out == "" {
			continue
		}
		if isRow {
			if rows%headerEvery == 0 {
				fmt.Fprintln(w, tracker.header())
			}
			rows++
		}
		fmt.Fprintln(w, out)
	}
	return scanner.Err()
}

// tracker pairs started/completed log lines into single table rows.
type tracker struct {
	opts    Options
	pending *entry
}

func newTracker(opts Options) *tracker {
	return &tracker{opts: opts}
}

// process consumes one log entry and returns the rendered line, if
// any. The second return reports whether the line is a table row (as
// opposed to a banner), so the caller can manage header repetition.
func (t *tracker) process(e entry) (string, bool) {
	switch e.Msg {
	case "tool call started":
		copied := e
		t.pending = &copied
		return "", false

	case "tool call completed":
		if t.pending == nil {
			return "", false
		}
		row := t.completedRow(*t.pending, e)
		t.pending = nil
		return row, true

	case "tool call failed":
		row := t.failedRow(e)
		t.pending = nil
		return row, true

	case "server starting":
		version := e.Version
		if version == "" {
			version = "?"
		}
		rule := strings.Repeat("═", 80)
		return t.color(green, fmt.Sprintf("\n%s\nMCP server v%s\n%s\n", rule, version, rule)), false

	case "server stopped":
		return t.color(yellow, "⏹  stopped"), false
	}
	return "", false
}

func (t *tracker) completedRow(started, completed entry) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		t.color(gray, clockTime(started.Timestamp)),
		t.color(green, "✓"),
		t.color(bold, fmt.Sprintf("%-18s", started.Tool)),
		t.color(cyan, fmt.Sprintf("%-28s", formatArgs(started.Arguments))),
		t.color(yellow, fmt.Sprintf("%8.2fms", completed.DurationMS)),
		t.color(dim, fmt.Sprintf("%5db", completed.ResponseBytes)),
	)
}

func (t *tracker) failedRow(e entry) string {
	tool := e.Tool
	ts := e.Timestamp
	if t.pending != nil {
		if tool == "" {
			tool = t.pending.Tool
		}
		ts = t.pending.Timestamp
	}
	// Truncate on a rune boundary so multi-byte errors stay valid UTF-8.
	errText := e.Error
	if runes := []rune(errText); len(runes) > 50 {
		errText = string(runes[:50])
	}
	return fmt.Sprintf("%s %s %s %s",
		t.color(gray, clockTime(ts)),
		t.color(red, "✗"),
		t.color(bold, fmt.Sprintf("%-18s", tool)),
		t.color(red, errText),
	)
}

func (t *tracker) header() string {
	rule := strings.Repeat("─", 80)
	return t.color(dim, fmt.Sprintf("%s\nTime     St Tool               Arguments                    Duration  Size\n%s", rule, rule))
}

// color wraps s in the given ANSI code unless colors are disabled.
func (t *tracker) color(code, s string) string {
	if t.opts.NoColor {
		return s
	}
	return code + s + reset
}

// clockTime reduces an ISO-8601 timestamp to HH:MM:SS.
func clockTime(ts string) string {
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		if len(ts) >= 8 {
			return ts[:8]
		}
		return ts
	}
	return parsed.Format("15:04:05")
}

// formatArgs renders arguments compactly as "k=v" pairs, sorted for
// stable output.
func formatArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, " ")
}
