// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutable context handling,
//              formatters and error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Formatter and LogError coverage folded in

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	debugLogger := logger.WithLevel(LevelDebug)

	if debugLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if debugLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", debugLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithFieldIsolation(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	tagged := base.WithField("component", "description-parser")

	base.Info("plain")
	tagged.Info("tagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not JSON: %v", err)
	}
	if _, ok := first["component"]; ok {
		t.Error("base logger picked up a field from its copy")
	}
	if second["component"] != "description-parser" {
		t.Errorf("component = %v, want description-parser", second["component"])
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Audit("always")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were written: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "always") {
		t.Errorf("expected warn and audit messages, got %q", out)
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "parsed")
	entry.Logger = "gemscli"
	entry.RequestID = "abc"
	entry.Fields = Fields{"zeta": 1, "alpha": "x"}

	got, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "[INF] {gemscli} (req=abc) parsed [alpha=x zeta=1]\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestJSONFormatterIncludesStructuredError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	err := gemserror.New("description has no name").WithCode(gemserror.CodeDescriptionSyntax)

	logger.WithRequestID("req-1").WarnWithErr("rejected", err)

	var data map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &data); jsonErr != nil {
		t.Fatalf("output is not JSON: %v", jsonErr)
	}
	if data["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", data["request_id"])
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != string(gemserror.CodeDescriptionSyntax) {
		t.Errorf("error code = %v, want %v", details["code"], gemserror.CodeDescriptionSyntax)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(NewEntry(LevelWarn, "careful"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), LevelWarn.Color()) {
		t.Errorf("expected warn color prefix, got %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(NewEntry(LevelWarn, "careful"))
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestLogError(t *testing.T) {
	syntax := gemserror.New("broken pattern").WithCode(gemserror.CodeDescriptionSyntax)

	tests := []struct {
		name        string
		err         error
		wantLevel   string
		wantMessage string
		wantAlert   bool
	}{
		{"plain error", errors.New("boom"), "error", "boom", false},
		{"low severity", gemserror.New("bad input").WithCode(gemserror.CodeValidationFailed), "info", "bad input", false},
		{"medium severity", gemserror.New("unknown"), "warn", "unknown", false},
		{"high severity", syntax, "error", "broken pattern", true},
		{"wrapped keeps outer message", gemserror.Wrap(syntax, "pattern rejected"), "error", "pattern rejected", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %v", data["message"], tt.wantMessage)
			}
			if data["error"] != tt.err.Error() {
				t.Errorf("error = %v, want %v", data["error"], tt.err.Error())
			}
			if _, alert := data["alert"]; alert != tt.wantAlert {
				t.Errorf("alert present = %v, want %v", alert, tt.wantAlert)
			}
		})
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat(" console "); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestNamedLoggerWithFields(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatText)
	logger := base.WithName("gemscli.check").WithFields(Fields{"prefix": "--", "separator": "="})

	logger.Info("checked", Field("arguments", 2).Merge(Err(errors.New("none"))))
	out := buf.String()
	for _, want := range []string{"{gemscli.check}", "arguments=2", "error=none", "prefix=--", "separator=="} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q: %q", want, out)
		}
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "gemscli.check") || strings.Contains(buf.String(), "prefix") {
		t.Errorf("base logger picked up name or fields: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	if logger.IsLevelEnabled(LevelDebug) {
		t.Fatal("debug should be disabled at warn")
	}
	logger.SetLevel(LevelDebug)
	if !logger.IsLevelEnabled(LevelDebug) || logger.GetLevel() != LevelDebug {
		t.Fatalf("level = %v after SetLevel(debug)", logger.GetLevel())
	}
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug entry missing: %q", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.ErrorWithErr("binding failed", errors.New("bad value"), Field("schema", "copy"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["level"] != "error" || data["error"] != "bad value" || data["schema"] != "copy" {
		t.Errorf("unexpected entry %v", data)
	}
}
