package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestEchoTool_Definition(t *testing.T) {
	def := NewEchoTool(zap.NewNop()).Definition()

	if def.Name != "echo" {
		t.Errorf("tool name = %q, want %q", def.Name, "echo")
	}
	required := def.InputSchema.Required
	if len(required) != 1 || required[0] != "message" {
		t.Errorf("required = %v, want [message]", required)
	}
}

func TestEchoTool_Handle(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"plain text", "hello stdio"},
		{"empty string", ""},
		{"unicode", "héllo wörld ✓"},
		{"embedded json", `{"nested": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewEchoTool(zap.NewNop())

			result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
				"message": tt.message,
			}))
			if err != nil {
				t.Fatalf("Handle returned error: %v", err)
			}
			if isErrorResult(result) {
				t.Fatalf("unexpected tool error: %s", getResultText(result))
			}

			var resp struct {
				EchoedMessage string `json:"echoed_message"`
				Timestamp     string `json:"timestamp"`
				MessageLength int    `json:"message_length"`
			}
			if err := json.Unmarshal([]byte(getResultText(result)), &resp); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}

			if resp.EchoedMessage != tt.message {
				t.Errorf("echoed_message = %q, want %q", resp.EchoedMessage, tt.message)
			}
			if want := utf8.RuneCountInString(tt.message); resp.MessageLength != want {
				t.Errorf("message_length = %d, want %d", resp.MessageLength, want)
			}
			if _, err := time.Parse(time.RFC3339Nano, resp.Timestamp); err != nil {
				t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
			}
		})
	}
}

func TestEchoTool_Handle_MultibyteLength(t *testing.T) {
	tool := NewEchoTool(zap.NewNop())

	// "héllo" is 6 bytes but 5 characters — message_length must report
	// characters so clients can compare against the string they sent.
	result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
		"message": "héllo",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	var resp struct {
		MessageLength int `json:"message_length"`
	}
	if err := json.Unmarshal([]byte(getResultText(result)), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.MessageLength != 5 {
		t.Errorf("message_length = %d, want 5 (character count, not bytes)", resp.MessageLength)
	}
}

func TestEchoTool_Handle_MissingMessage(t *testing.T) {
	tool := NewEchoTool(zap.NewNop())

	// Schema marks message as required, but a sloppy client omitting it
	// must still get a well-formed response, not a crash.
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.Contains(text, `"echoed_message": ""`) {
		t.Errorf("missing message should echo empty string, got: %s", text)
	}
	if !strings.Contains(text, `"message_length": 0`) {
		t.Errorf("missing message should report length 0, got: %s", text)
	}
}
